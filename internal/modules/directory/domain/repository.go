package domain

import "context"

// ArtistSource is the Artist Record Store: anything that can return the
// records matching a filter in collection order.
type ArtistSource interface {
	// List returns at most limit matching records; limit <= 0 means no limit.
	List(ctx context.Context, filter Filter, limit int) ([]Artist, error)
	GetByID(ctx context.Context, id string) (*Artist, error)
	// Facets returns the facet values derived from the stored records.
	Facets(ctx context.Context) (Facets, error)
}
