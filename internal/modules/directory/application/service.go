package application

import (
	"context"
	"log/slog"

	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

// MaxListLimit caps a single listing page.
const MaxListLimit = 1000

// ResultCache stores listing results keyed by filter and limit.
type ResultCache interface {
	Get(ctx context.Context, filter domain.Filter, limit int) ([]domain.Artist, bool)
	Set(ctx context.Context, filter domain.Filter, limit int, artists []domain.Artist)
	Invalidate(ctx context.Context) error
}

// NoopCache never hits. It is used when Redis is disabled.
type NoopCache struct{}

func (NoopCache) Get(context.Context, domain.Filter, int) ([]domain.Artist, bool) { return nil, false }
func (NoopCache) Set(context.Context, domain.Filter, int, []domain.Artist)        {}
func (NoopCache) Invalidate(context.Context) error                                { return nil }

// DirectoryService serves the artist listing.
type DirectoryService interface {
	List(ctx context.Context, filter domain.Filter, limit int) ([]domain.Artist, error)
	Get(ctx context.Context, id string) (*domain.Artist, error)
	Facets(ctx context.Context) (domain.Facets, error)
	Featured(ctx context.Context) ([]domain.Artist, error)
	Invalidate(ctx context.Context) error
}

type directoryService struct {
	source        domain.ArtistSource
	cache         ResultCache
	defaultLimit  int
	featuredCount int
}

// NewDirectoryService wires a source and a cache. A nil cache disables caching.
func NewDirectoryService(source domain.ArtistSource, cache ResultCache, defaultLimit, featuredCount int) DirectoryService {
	if cache == nil {
		cache = NoopCache{}
	}
	if defaultLimit <= 0 || defaultLimit > MaxListLimit {
		defaultLimit = MaxListLimit
	}
	if featuredCount <= 0 {
		featuredCount = 4
	}
	return &directoryService{
		source:        source,
		cache:         cache,
		defaultLimit:  defaultLimit,
		featuredCount: featuredCount,
	}
}

// ClampLimit maps a requested limit into 1..MaxListLimit, using def for zero or negative values.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func (s *directoryService) List(ctx context.Context, filter domain.Filter, limit int) ([]domain.Artist, error) {
	filter = filter.Normalized()
	limit = ClampLimit(limit, s.defaultLimit)

	if cached, ok := s.cache.Get(ctx, filter, limit); ok {
		return cached, nil
	}

	artists, err := s.source.List(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []domain.Artist{}
	}
	s.cache.Set(ctx, filter, limit, artists)
	return artists, nil
}

func (s *directoryService) Get(ctx context.Context, id string) (*domain.Artist, error) {
	if id == "" {
		return nil, domain.ErrInvalidArtistID
	}
	return s.source.GetByID(ctx, id)
}

func (s *directoryService) Facets(ctx context.Context) (domain.Facets, error) {
	return s.source.Facets(ctx)
}

func (s *directoryService) Featured(ctx context.Context) ([]domain.Artist, error) {
	return s.List(ctx, domain.Filter{}, s.featuredCount)
}

func (s *directoryService) Invalidate(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "directory cache invalidation failed", "error", err)
		return err
	}
	return nil
}
