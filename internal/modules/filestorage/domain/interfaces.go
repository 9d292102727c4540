package domain

import (
	"context"
	"io"
	"time"
)

// FileStorage is implemented by S3 (or MinIO) and the local filesystem.
type FileStorage interface {
	// UploadFile stores the object under key and returns its public URL
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	DeleteFile(ctx context.Context, key string) error

	// GetPresignedURL returns a temporary URL for viewing a private object
	GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)

	// GetKeyFromURL maps a public URL produced by UploadFile back to its key
	GetKeyFromURL(url string) (string, error)
}
