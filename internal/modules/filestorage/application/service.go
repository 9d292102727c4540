package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/saransh1220/flowart/internal/modules/filestorage/domain"
)

const jpegQuality = 85

// FileService provides high-level file operations
type FileService struct {
	storage domain.FileStorage
}

// NewFileService creates a new file service
func NewFileService(storage domain.FileStorage) *FileService {
	return &FileService{
		storage: storage,
	}
}

// UploadImage decodes src, crops and scales it to the variant, and stores
// it as JPEG under <folder>/<owner>/<uuid>.jpg.
func (s *FileService) UploadImage(ctx context.Context, src io.Reader, variant domain.ImageVariant, owner string) (*domain.File, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedImage, err)
	}

	resized := imaging.Fill(img, variant.Width, variant.Height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	key := path.Join(variant.Folder, owner, uuid.New().String()+".jpg")
	size := int64(buf.Len())
	url, err := s.UploadWithKey(ctx, &buf, key, "image/jpeg")
	if err != nil {
		return nil, err
	}
	return &domain.File{Key: key, URL: url, ContentType: "image/jpeg", Size: size}, nil
}

// UploadWithKey uploads a file with a specific key
func (s *FileService) UploadWithKey(ctx context.Context, file io.Reader, key string, contentType string) (string, error) {
	return s.storage.UploadFile(ctx, key, file, contentType)
}

// GetPresignedURL generates a presigned URL for viewing
func (s *FileService) GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.storage.GetPresignedURL(ctx, key, expiration)
}

// Delete deletes a file
func (s *FileService) Delete(ctx context.Context, key string) error {
	return s.storage.DeleteFile(ctx, key)
}

// GetKeyFromUrl extracts the storage key from a URL
func (s *FileService) GetKeyFromUrl(fileUrl string) (string, error) {
	return s.storage.GetKeyFromURL(fileUrl)
}

// DeleteByURL removes the object behind a URL produced by this service.
// URLs pointing elsewhere, such as the default stock images, are ignored.
func (s *FileService) DeleteByURL(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}
	key, err := s.GetKeyFromUrl(fileURL)
	if err != nil {
		return nil
	}
	return s.Delete(ctx, key)
}
