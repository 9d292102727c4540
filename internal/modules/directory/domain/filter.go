package domain

import (
	"fmt"
	"strings"
)

// Filter is the Connectory filter state: a free-text query plus two facets.
// Empty facet values behave like All.
type Filter struct {
	Query      string
	Medium     string
	Experience string
}

// NormalizeQuery trims and lower-cases free-text input.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Normalized returns the filter with the query normalized and empty facets set to All.
func (f Filter) Normalized() Filter {
	out := Filter{Query: NormalizeQuery(f.Query), Medium: f.Medium, Experience: f.Experience}
	if out.Medium == "" {
		out.Medium = All
	}
	if out.Experience == "" {
		out.Experience = All
	}
	return out
}

// IsZero reports whether the filter imposes no constraint at all.
func (f Filter) IsZero() bool {
	n := f.Normalized()
	return n.Query == "" && n.Medium == All && n.Experience == All
}

// Key is a stable identifier for the normalized filter, used for caching.
func (f Filter) Key() string {
	n := f.Normalized()
	return fmt.Sprintf("m=%s|e=%s|q=%s", n.Medium, n.Experience, n.Query)
}

// Matches reports whether a satisfies every constraint of f.
func Matches(a Artist, f Filter) bool {
	return matchesText(a, NormalizeQuery(f.Query)) &&
		matchesFacet(string(a.Medium), f.Medium) &&
		matchesFacet(string(a.Experience), f.Experience)
}

func matchesText(a Artist, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Username), q) ||
		strings.Contains(strings.ToLower(a.Bio), q)
}

func matchesFacet(value, selected string) bool {
	return selected == "" || selected == All || value == selected
}

// Apply returns the records matching f in their original order.
// The input slice is never modified.
func Apply(records []Artist, f Filter) []Artist {
	out := make([]Artist, 0, len(records))
	for _, a := range records {
		if Matches(a, f) {
			out = append(out, a)
		}
	}
	return out
}
