// Package fixtures holds the community board's launch posts.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/saransh1220/flowart/internal/modules/community/domain"
	artists "github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
)

type seedPost struct {
	author   string
	postType domain.PostType
	title    string
	content  string
	day      int
	tags     []string
	likes    int
	comments int
}

var seedPosts = []seedPost{
	{
		author:   "elena_creates",
		postType: domain.PostTypeOpenCall,
		title:    "Digital Art Residency - Applications Open",
		content:  "Excited to announce that Studio X is accepting applications for our 2024 Digital Art Residency. 3-month program with full studio access, mentorship, and exhibition opportunities.",
		day:      15,
		tags:     []string{"Residency", "Digital Art", "Open Call"},
		likes:    89,
		comments: 23,
	},
	{
		author:   "marcus_sculptor",
		postType: domain.PostTypeProjectUpdate,
		title:    "New Series: Regeneration",
		content:  "Thrilled to share my latest body of work exploring themes of environmental renewal. These sculptures are made entirely from reclaimed industrial materials. Opening March 10th at Galerie Berlin.",
		day:      14,
		tags:     []string{"Exhibition", "Sculpture", "Sustainability"},
		likes:    156,
		comments: 41,
	},
	{
		author:   "sophie_digital",
		postType: domain.PostTypeOpenCall,
		title:    "Looking for Creative Coders",
		content:  "Seeking 2-3 creative coders for collaborative project merging AI and interactive installations. Remote-friendly. DM for details.",
		day:      13,
		tags:     []string{"Collaboration", "Creative Coding", "AI"},
		likes:    203,
		comments: 67,
	},
	{
		author:   "aisha_canvas",
		postType: domain.PostTypeProjectUpdate,
		title:    "Studio Visit: Behind the Canvas",
		content:  `Posted a new video showing my process for the "Color Symphony" series. Watch how I build layers and create depth in abstract expressionism.`,
		day:      12,
		tags:     []string{"Process", "Video", "Abstract"},
		likes:    78,
		comments: 19,
	},
	{
		author:   "yuki_ceramic",
		postType: domain.PostTypeOpenCall,
		title:    "Workshop: Traditional Ceramic Techniques",
		content:  "Teaching a 2-day workshop on Japanese ceramic methods in Kyoto. Limited to 8 participants. April 20-21. Registration opens next week.",
		day:      11,
		tags:     []string{"Workshop", "Ceramics", "Education"},
		likes:    134,
		comments: 52,
	},
}

// Posts returns the launch posts, newest first. Authors are seeded artist
// accounts, so the posts can only be stored after those accounts exist.
func Posts() []domain.Post {
	names := map[string]string{}
	for _, a := range artists.Artists() {
		names[a.Username] = a.Name
	}

	out := make([]domain.Post, 0, len(seedPosts))
	for _, s := range seedPosts {
		authorID := uuid.MustParse(artists.ArtistID(s.author))
		out = append(out, domain.Post{
			ID:        uuid.NewSHA1(authorID, []byte(s.title)),
			Type:      s.postType,
			AuthorID:  authorID,
			Author:    names[s.author],
			Title:     s.title,
			Content:   s.content,
			Tags:      append([]string(nil), s.tags...),
			Likes:     s.likes,
			Comments:  s.comments,
			CreatedAt: time.Date(2024, time.January, s.day, 9, 0, 0, 0, time.UTC),
		})
	}
	return out
}
