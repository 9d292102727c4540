package filestorage

import (
	"context"
	"fmt"

	"github.com/saransh1220/flowart/internal/modules/filestorage/application"
	"github.com/saransh1220/flowart/internal/modules/filestorage/domain"
	"github.com/saransh1220/flowart/internal/modules/filestorage/infrastructure/local"
	"github.com/saransh1220/flowart/internal/modules/filestorage/infrastructure/s3"
	"github.com/saransh1220/flowart/internal/shared/infrastructure/config"
)

// Module represents the FileStorage module
type Module struct {
	service   *application.FileService
	storage   domain.FileStorage
	localPath string
}

// NewModule creates and initializes the FileStorage module
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	m := &Module{}

	if cfg.UseS3 {
		storage, err := s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		m.storage = storage
	} else {
		storage, err := local.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		m.storage = storage
		m.localPath = storage.BasePath()
	}

	m.service = application.NewFileService(m.storage)
	return m, nil
}

// Service returns the file service for use by other modules
func (m *Module) Service() *application.FileService {
	return m.service
}

// LocalPath is the upload directory to serve statically, or "" when objects live in S3.
func (m *Module) LocalPath() string {
	return m.localPath
}
