package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

// ArtistColumns selects a users row as a domain.Artist.
const ArtistColumns = `id, name, username, bio, avatar_url, cover_image_url, location,
		medium, experience,
		instagram AS "social.instagram", twitter AS "social.twitter", website AS "social.website",
		verified, followers, created_at, updated_at`

type PgArtistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) *PgArtistRepository {
	return &PgArtistRepository{db: db}
}

// EscapeLike escapes LIKE metacharacters so the term matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PgArtistRepository) List(ctx context.Context, filter domain.Filter, limit int) ([]domain.Artist, error) {
	filter = filter.Normalized()

	query := `SELECT ` + ArtistColumns + ` FROM users WHERE 1=1`
	args := []interface{}{}
	argID := 1

	if filter.Medium != domain.All {
		query += fmt.Sprintf(" AND medium = $%d", argID)
		args = append(args, filter.Medium)
		argID++
	}

	if filter.Experience != domain.All {
		query += fmt.Sprintf(" AND experience = $%d", argID)
		args = append(args, filter.Experience)
		argID++
	}

	if filter.Query != "" {
		term := "%" + EscapeLike(filter.Query) + "%"
		query += fmt.Sprintf(" AND (name ILIKE $%d OR username ILIKE $%d OR bio ILIKE $%d)", argID, argID, argID)
		args = append(args, term)
		argID++
	}

	query += " ORDER BY created_at ASC, id ASC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, limit)
	}

	artists := []domain.Artist{}
	if err := r.db.SelectContext(ctx, &artists, query, args...); err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (r *PgArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	var artist domain.Artist
	query := `SELECT ` + ArtistColumns + ` FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &artist, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return &artist, nil
}

// Facets derives facet values from the rows in insertion order.
func (r *PgArtistRepository) Facets(ctx context.Context) (domain.Facets, error) {
	var rows []domain.Artist
	query := `SELECT medium, experience FROM users ORDER BY created_at ASC, id ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return domain.Facets{}, fmt.Errorf("artist facets: %w", err)
	}
	return domain.DeriveFacets(rows), nil
}
