package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saransh1220/flowart/internal/modules/auth/domain"
	artists "github.com/saransh1220/flowart/internal/modules/directory/infrastructure/persistence/postgres"
)

const userColumns = artists.ArtistColumns + `, email, password_hash`

const uniqueViolation = "23505"

type PgUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository returns a PostgreSQL-backed domain.UserRepository.
func NewUserRepository(db *sqlx.DB) *PgUserRepository {
	return &PgUserRepository{db: db}
}

// Create implements domain.UserRepository. A missing id or timestamp is filled in.
func (r *PgUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	query := `INSERT INTO users (
			id, email, password_hash, name, username, bio, avatar_url, cover_image_url, location,
			medium, experience, instagram, twitter, website, verified, followers, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Username, user.Bio, user.Avatar, user.CoverImage, user.Location,
		string(user.Medium), string(user.Experience), user.Social.Instagram, user.Social.Twitter, user.Social.Website,
		user.Verified, user.Followers, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			if strings.Contains(pqErr.Constraint, "username") {
				return domain.ErrUsernameTaken
			}
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail implements domain.UserRepository. Emails compare case-insensitively.
func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	err := r.db.GetContext(ctx, user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID implements domain.UserRepository
func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID implements domain.UserFinder for exposing to other modules
func (r *PgUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

// Exists implements domain.UserFinder
func (r *PgUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// UsernameExists implements domain.UserRepository
func (r *PgUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE lower(username) = lower($1))`
	err := r.db.GetContext(ctx, &exists, query, username)
	return exists, err
}

// Count implements domain.UserRepository
func (r *PgUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}

// UpdateProfile writes the non-nil fields of update. A social block replaces
// all three links. Returns domain.ErrUserNotFound when no row matched.
func (r *PgUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) error {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if update.Bio != nil {
		set("bio", *update.Bio)
	}
	if update.Location != nil {
		set("location", *update.Location)
	}
	if update.Medium != nil {
		set("medium", *update.Medium)
	}
	if update.Experience != nil {
		set("experience", *update.Experience)
	}
	if update.Social != nil {
		set("instagram", update.Social.Instagram)
		set("twitter", update.Social.Twitter)
		set("website", update.Social.Website)
	}
	if update.Avatar != nil {
		set("avatar_url", *update.Avatar)
	}
	if update.CoverImage != nil {
		set("cover_image_url", *update.CoverImage)
	}

	if len(setClauses) == 0 {
		return nil
	}

	set("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIndex)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
