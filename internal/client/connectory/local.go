package connectory

import (
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

type (
	Artist = domain.Artist
	Filter = domain.Filter
)

// LocalView filters an in-memory collection synchronously. The records
// are shared read-only; every change recomputes the result set.
type LocalView struct {
	records []Artist
	filter  Filter
	results []Artist
}

func NewLocalView(records []Artist) *LocalView {
	v := &LocalView{records: records, filter: Filter{Medium: domain.All, Experience: domain.All}}
	v.recompute()
	return v
}

func (v *LocalView) recompute() {
	v.results = domain.Apply(v.records, v.filter)
}

func (v *LocalView) SetQuery(q string) {
	v.filter.Query = q
	v.recompute()
}

func (v *LocalView) SetMedium(m string) {
	v.filter.Medium = m
	v.recompute()
}

func (v *LocalView) SetExperience(e string) {
	v.filter.Experience = e
	v.recompute()
}

// SetFilter replaces the whole filter at once.
func (v *LocalView) SetFilter(f Filter) {
	v.filter = f
	v.recompute()
}

func (v *LocalView) Filter() Filter { return v.filter }

func (v *LocalView) Results() []Artist { return v.results }

// Status is Populated or Empty; local data never loads or fails.
func (v *LocalView) Status() Status {
	return ResolveStatus(false, nil, len(v.results))
}

// Facets derives the selectable facet values from the collection.
func (v *LocalView) Facets() domain.Facets {
	return domain.DeriveFacets(v.records)
}
