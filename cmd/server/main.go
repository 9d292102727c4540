package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/saransh1220/flowart/internal/gateway"
	"github.com/saransh1220/flowart/internal/gateway/middleware"
	"github.com/saransh1220/flowart/internal/modules/auth"
	authApp "github.com/saransh1220/flowart/internal/modules/auth/application"
	"github.com/saransh1220/flowart/internal/modules/community"
	communityDomain "github.com/saransh1220/flowart/internal/modules/community/domain"
	postFixtures "github.com/saransh1220/flowart/internal/modules/community/infrastructure/fixtures"
	"github.com/saransh1220/flowart/internal/modules/directory"
	directoryApp "github.com/saransh1220/flowart/internal/modules/directory/application"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/cache"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
	"github.com/saransh1220/flowart/internal/modules/filestorage"
	"github.com/saransh1220/flowart/internal/modules/user"
	"github.com/saransh1220/flowart/internal/shared/infrastructure/config"
	"github.com/saransh1220/flowart/internal/shared/infrastructure/database"
	"github.com/saransh1220/flowart/internal/shared/logging"
	"github.com/saransh1220/flowart/migrations"
	"github.com/saransh1220/flowart/pkg/migration"
)

func main() {
	cfg := config.Load()

	logger, closer := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	err := run(cfg)
	_ = closer.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx := context.Background()

	slog.Info("connecting to database", "host", cfg.Database.Host, "name", cfg.Database.DBName)
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	slog.Info("database connected")

	if cfg.Migrations.AutoMigrate {
		if err := migration.AutoMigrate(migrationConfig(cfg)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	fileModule, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		return err
	}

	source, err := directory.NewSource(cfg.Directory.Source, db)
	if err != nil {
		return err
	}
	directoryModule := directory.NewModule(source, listingCache(cfg), cfg.Directory.DefaultLimit, cfg.Directory.FeaturedCount)

	authModule := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry, fileModule.Service())
	userModule := user.NewModule(authModule.UserRepository(), fileModule.Service(), directoryModule.Service())
	if cfg.Directory.Source == directory.SourceFixtures {
		slog.Warn("directory serves bundled fixtures; profile edits are disabled")
		userModule.Service().SetReadOnly(true)
	}

	communityModule := community.NewModule(db, authModule.UserFinder(), middleware.ParseOrigins(cfg.Server.AllowedOrigins)...)
	defer communityModule.Close()

	if cfg.Directory.SeedOnStart {
		seedDemoData(ctx, authModule.Service(), communityModule.Service())
	}

	limiter := middleware.NewLoginRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)
	defer limiter.Close()

	router := gateway.SetupRoutes(gateway.RouterConfig{
		AuthHandler:      authModule.HTTPHandler(),
		AuthMiddleware:   middleware.NewAuthMiddleware(cfg.JWT.Secret),
		LoginLimiter:     limiter,
		DirectoryHandler: directoryModule.HTTPHandler(),
		UserHandler:      userModule.HTTPHandler(),
		CommunityHandler: communityModule.HTTPHandler(),
		UploadsDir:       fileModule.LocalPath(),
	})

	server := gateway.NewServer(cfg.Server.Port, router.Handler(cfg.Server.AllowedOrigins))
	return server.Start()
}

func migrationConfig(cfg config.Config) *migration.Config {
	mc := &migration.Config{
		MigrationsPath: cfg.Migrations.Path,
		DatabaseURL:    cfg.Database.URL(),
		Logger:         slog.Default(),
	}
	if cfg.Migrations.Path == "" {
		mc.Source = migrations.FS
	}
	return mc
}

// listingCache returns a Redis-backed cache, or none when Redis is
// disabled or unreachable.
func listingCache(cfg config.Config) directoryApp.ResultCache {
	if !cfg.Redis.Enabled {
		return directoryApp.NoopCache{}
	}
	client, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, listing cache disabled", "addr", cfg.Redis.Addr(), "error", err)
		return directoryApp.NoopCache{}
	}
	return cache.NewRedisCache(client, cfg.Directory.CacheTTL)
}

func seedAccounts() []authApp.SeedAccount {
	accs := fixtures.Accounts()
	out := make([]authApp.SeedAccount, len(accs))
	for i, acc := range accs {
		out[i] = authApp.SeedAccount{
			Email:    acc.Email,
			Password: fixtures.DemoPassword,
			Profile:  acc.Artist,
		}
	}
	return out
}

type accountSeeder interface {
	Seed(ctx context.Context, accounts []authApp.SeedAccount) (int, error)
}

type postSeeder interface {
	Seed(ctx context.Context, posts []communityDomain.Post) (int, error)
}

// seedDemoData fills an empty database with the demo artists and board
// posts. Failures are logged and startup continues.
func seedDemoData(ctx context.Context, accounts accountSeeder, posts postSeeder) {
	n, err := accounts.Seed(ctx, seedAccounts())
	if err != nil {
		slog.Error("seed accounts failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("seeded demo accounts", "count", n)
	}

	n, err = posts.Seed(ctx, postFixtures.Posts())
	if err != nil {
		slog.Error("seed community posts failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("seeded community posts", "count", n)
	}
}
