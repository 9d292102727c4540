package domain

import (
	"context"

	"github.com/google/uuid"
	directory "github.com/saransh1220/flowart/internal/modules/directory/domain"
)

const (
	DefaultAvatar     = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=400&h=400&fit=crop"
	DefaultCoverImage = "https://images.unsplash.com/photo-1557672172-298e090bd0f1?w=1200&h=400&fit=crop"
)

// User is an account: the public artist profile plus login credentials.
type User struct {
	directory.Artist
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// UUID parses the profile id.
func (u *User) UUID() (uuid.UUID, error) {
	return uuid.Parse(u.ID)
}

// ProfileUpdate carries the editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Bio        *string                `json:"bio,omitempty"`
	Location   *string                `json:"location,omitempty"`
	Medium     *string                `json:"medium,omitempty"`
	Experience *string                `json:"experience,omitempty"`
	Social     *directory.SocialLinks `json:"social,omitempty"`
	Avatar     *string                `json:"avatar,omitempty"`
	CoverImage *string                `json:"coverImage,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Bio == nil && p.Location == nil && p.Medium == nil && p.Experience == nil &&
		p.Social == nil && p.Avatar == nil && p.CoverImage == nil
}

// UserRepository persists accounts
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) error
	Count(ctx context.Context) (int, error)
}

// UserFinder is the read side exposed to other modules
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
