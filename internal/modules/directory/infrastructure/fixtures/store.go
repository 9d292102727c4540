package fixtures

import (
	"context"

	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

// Store serves an immutable in-memory collection through the directory pipeline.
type Store struct {
	records []domain.Artist
}

// NewStore returns a store over records. A nil slice means the bundled profiles.
func NewStore(records []domain.Artist) *Store {
	if records == nil {
		records = Artists()
	}
	return &Store{records: records}
}

// List implements domain.ArtistSource
func (s *Store) List(ctx context.Context, filter domain.Filter, limit int) ([]domain.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := domain.Apply(s.records, filter)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetByID implements domain.ArtistSource
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	for _, a := range s.records {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, domain.ErrArtistNotFound
}

// Facets implements domain.ArtistSource
func (s *Store) Facets(ctx context.Context) (domain.Facets, error) {
	return domain.DeriveFacets(s.records), nil
}
