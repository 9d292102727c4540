package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// All is the filter sentinel meaning "no constraint".
const All = "All"

type PostType string

const (
	PostTypeOpenCall      PostType = "Open Call"
	PostTypeProjectUpdate PostType = "Project Update"
)

// PostTypes lists the board's post types in display order.
func PostTypes() []PostType {
	return []PostType{PostTypeOpenCall, PostTypeProjectUpdate}
}

func (t PostType) Valid() bool {
	return slices.Contains(PostTypes(), t)
}

// Post is an announcement on the community board.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Type      PostType  `json:"type" db:"type"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id"`
	Author    string    `json:"author" db:"author"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Tags      []string  `json:"tags" db:"-"`
	Likes     int       `json:"likes" db:"likes"`
	Comments  int       `json:"comments" db:"comments"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Filter narrows the board by tag and type. Empty or All means no constraint.
type Filter struct {
	Tag  string
	Type string
}

func isAll(v string) bool {
	return v == "" || v == All
}

// Normalized trims both fields and maps blanks to All.
func (f Filter) Normalized() Filter {
	f.Tag = strings.TrimSpace(f.Tag)
	f.Type = strings.TrimSpace(f.Type)
	if f.Tag == "" {
		f.Tag = All
	}
	if f.Type == "" {
		f.Type = All
	}
	return f
}

// Matches reports whether p carries the tag and has the type. Tags match exactly.
func (f Filter) Matches(p Post) bool {
	if !isAll(f.Tag) && !slices.Contains(p.Tags, f.Tag) {
		return false
	}
	if !isAll(f.Type) && string(p.Type) != f.Type {
		return false
	}
	return true
}

// Apply returns the matching posts in their original order.
func (f Filter) Apply(posts []Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns All followed by every distinct tag, in first-seen order.
func Tags(posts []Post) []string {
	tags := []string{All}
	seen := map[string]bool{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
