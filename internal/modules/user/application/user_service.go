package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	authDomain "github.com/saransh1220/flowart/internal/modules/auth/domain"
	directory "github.com/saransh1220/flowart/internal/modules/directory/domain"
	fileDomain "github.com/saransh1220/flowart/internal/modules/filestorage/domain"
	"github.com/saransh1220/flowart/internal/modules/user/domain"
)

// ImageStore resizes and stores profile images
type ImageStore interface {
	UploadImage(ctx context.Context, src io.Reader, variant fileDomain.ImageVariant, owner string) (*fileDomain.File, error)
	DeleteByURL(ctx context.Context, fileURL string) error
	Delete(ctx context.Context, key string) error
}

// ListingInvalidator drops cached directory listings after a profile changes
type ListingInvalidator interface {
	Invalidate(ctx context.Context) error
}

type UserService struct {
	repo      authDomain.UserRepository
	images    ImageStore
	directory ListingInvalidator
	readOnly  bool
}

func NewUserService(repo authDomain.UserRepository, images ImageStore, directory ListingInvalidator) *UserService {
	return &UserService{repo: repo, images: images, directory: directory}
}

// SetReadOnly rejects every profile change. Used when the directory lists
// bundled records, where edits would never show up.
func (s *UserService) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
}

func validateUpdate(update authDomain.ProfileUpdate) error {
	if update.IsEmpty() {
		return domain.ErrNoChanges
	}
	if update.Medium != nil && !directory.Medium(*update.Medium).Valid() {
		return fmt.Errorf("%w: %q", directory.ErrInvalidMedium, *update.Medium)
	}
	if update.Experience != nil && !directory.Experience(*update.Experience).Valid() {
		return fmt.Errorf("%w: %q", directory.ErrInvalidExperience, *update.Experience)
	}
	return nil
}

// UpdateProfile applies update to the target profile on behalf of caller
// and returns the stored result.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, targetID uuid.UUID, update authDomain.ProfileUpdate) (*authDomain.User, error) {
	if callerID != targetID {
		return nil, domain.ErrNotOwner
	}
	if s.readOnly {
		return nil, domain.ErrReadOnly
	}
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfile(ctx, targetID, update); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	return s.repo.GetByID(ctx, targetID)
}

// UploadAvatar stores a square avatar and points the profile at it
func (s *UserService) UploadAvatar(ctx context.Context, callerID, targetID uuid.UUID, src io.Reader) (*authDomain.User, error) {
	return s.uploadImage(ctx, callerID, targetID, src, fileDomain.AvatarVariant)
}

// UploadCover stores a banner image and points the profile at it
func (s *UserService) UploadCover(ctx context.Context, callerID, targetID uuid.UUID, src io.Reader) (*authDomain.User, error) {
	return s.uploadImage(ctx, callerID, targetID, src, fileDomain.CoverVariant)
}

func (s *UserService) uploadImage(ctx context.Context, callerID, targetID uuid.UUID, src io.Reader, variant fileDomain.ImageVariant) (*authDomain.User, error) {
	if callerID != targetID {
		return nil, domain.ErrNotOwner
	}
	if s.readOnly {
		return nil, domain.ErrReadOnly
	}

	user, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	previous := user.Avatar
	if variant == fileDomain.CoverVariant {
		previous = user.CoverImage
	}

	file, err := s.images.UploadImage(ctx, src, variant, targetID.String())
	if err != nil {
		return nil, err
	}

	var update authDomain.ProfileUpdate
	if variant == fileDomain.CoverVariant {
		update.CoverImage = &file.URL
	} else {
		update.Avatar = &file.URL
	}

	if err := s.repo.UpdateProfile(ctx, targetID, update); err != nil {
		// The profile still points at the old image; drop the orphan.
		if delErr := s.images.Delete(ctx, file.Key); delErr != nil {
			slog.WarnContext(ctx, "remove orphaned upload", "key", file.Key, "error", delErr)
		}
		return nil, err
	}
	if err := s.images.DeleteByURL(ctx, previous); err != nil {
		slog.WarnContext(ctx, "remove previous image", "url", previous, "error", err)
	}
	s.invalidate(ctx)

	return s.repo.GetByID(ctx, targetID)
}

func (s *UserService) invalidate(ctx context.Context) {
	if s.directory == nil {
		return
	}
	if err := s.directory.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "invalidate directory listings", "error", err)
	}
}
