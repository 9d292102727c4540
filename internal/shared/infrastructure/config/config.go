package config

import (
	"os"
	"strconv"
	"time"

	"github.com/saransh1220/flowart/internal/shared/infrastructure/database"
	"github.com/saransh1220/flowart/internal/shared/logging"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    database.PostgresConfig
	Redis       database.RedisConfig
	JWT         JWTConfig
	FileStorage FileStorageConfig
	Directory   DirectoryConfig
	Logging     logging.Config
	RateLimit   RateLimitConfig
	Migrations  MigrationsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
	PublicBaseURL  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// FileStorageConfig holds file storage configuration
type FileStorageConfig struct {
	UseS3            bool
	S3Region         string
	S3Endpoint       string
	S3PublicEndpoint string
	S3AccessKey      string
	S3SecretKey      string
	S3BucketName     string
	S3UseSSL         bool
	LocalPath        string
	LocalBaseURL     string
}

// DirectoryConfig controls where artist records come from and how listings are cached.
type DirectoryConfig struct {
	// Source is "postgres" or "fixtures".
	Source        string
	CacheTTL      time.Duration
	DefaultLimit  int
	FeaturedCount int
	SeedOnStart   bool
}

// RateLimitConfig holds limits for the login endpoint
type RateLimitConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

// MigrationsConfig holds migration runner settings
type MigrationsConfig struct {
	// Path is a directory of .sql files. Empty uses the migrations embedded in the binary.
	Path        string
	AutoMigrate bool
}

// Load reads configuration from environment variables
func Load() Config {
	port := getEnv("PORT", "8080")
	publicBaseURL := getEnv("PUBLIC_BASE_URL", "http://localhost:"+port)

	return Config{
		Server: ServerConfig{
			Port:           port,
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
			PublicBaseURL:  publicBaseURL,
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "flowart"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "true") == "true",
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "default-dev-secret"),
			Expiry: parseDuration(getEnv("JWT_EXPIRATION", "24h"), 24*time.Hour),
		},
		FileStorage: FileStorageConfig{
			UseS3:            getEnv("USE_S3", "false") == "true",
			S3Region:         getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:       getEnv("S3_ENDPOINT", ""),
			S3PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", getEnv("S3_ENDPOINT", "")),
			S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
			S3BucketName:     getEnv("S3_BUCKET", ""),
			S3UseSSL:         getEnv("S3_USE_SSL", "true") == "true",
			LocalPath:        getEnv("LOCAL_STORAGE_PATH", "./uploads"),
			LocalBaseURL:     publicBaseURL + "/uploads",
		},
		Directory: DirectoryConfig{
			Source:        getEnv("DIRECTORY_SOURCE", "postgres"),
			CacheTTL:      parseDuration(getEnv("DIRECTORY_CACHE_TTL", "10m"), 10*time.Minute),
			DefaultLimit:  parseInt(getEnv("DIRECTORY_DEFAULT_LIMIT", "1000"), 1000),
			FeaturedCount: parseInt(getEnv("DIRECTORY_FEATURED_COUNT", "4"), 4),
			SeedOnStart:   getEnv("SEED_ON_START", "true") == "true",
		},
		Logging: logging.Config{
			Level:          getEnv("LOG_LEVEL", "info"),
			Format:         getEnv("LOG_FORMAT", "text"),
			FilePath:       getEnv("LOG_FILE", ""),
			FileMaxSizeMB:  parseInt(getEnv("LOG_FILE_MAX_SIZE_MB", "50"), 50),
			FileMaxFiles:   parseInt(getEnv("LOG_FILE_MAX_FILES", "5"), 5),
			FileMaxAgeDays: parseInt(getEnv("LOG_FILE_MAX_AGE_DAYS", "28"), 28),
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: parseInt(getEnv("LOGIN_RATE_PER_MINUTE", "10"), 10),
			LoginBurst:     parseInt(getEnv("LOGIN_BURST", "5"), 5),
		},
		Migrations: MigrationsConfig{
			Path:        getEnv("MIGRATIONS_PATH", ""),
			AutoMigrate: getEnv("AUTO_MIGRATE", "true") == "true",
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}

func parseInt(value string, defaultValue int) int {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return defaultValue
}
