package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	authDomain "github.com/saransh1220/flowart/internal/modules/auth/domain"
	"github.com/saransh1220/flowart/internal/modules/community/domain"
)

// EventPostCreated is the live feed event sent for every new post.
const EventPostCreated = "post.created"

// CreatePostRequest is the body of a new board post
type CreatePostRequest struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// FeedEvent is the message pushed to live feed subscribers
type FeedEvent struct {
	Event string      `json:"event"`
	Post  domain.Post `json:"post"`
}

type CommunityService struct {
	repo    domain.PostRepository
	authors authDomain.UserFinder
	feed    domain.Broadcaster
	now     func() time.Time
}

func NewCommunityService(repo domain.PostRepository, authors authDomain.UserFinder, feed domain.Broadcaster) *CommunityService {
	return &CommunityService{repo: repo, authors: authors, feed: feed, now: time.Now}
}

// List returns the posts matching filter, newest first.
func (s *CommunityService) List(ctx context.Context, filter domain.Filter) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx, filter.Normalized())
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// Tags returns All followed by the board's tags in first-seen order.
func (s *CommunityService) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.repo.List(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}
	return domain.Tags(posts), nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || t == domain.All || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Create stores a post authored by authorID and announces it on the live feed.
func (s *CommunityService) Create(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*domain.Post, error) {
	postType := domain.PostType(strings.TrimSpace(req.Type))
	if !postType.Valid() {
		return nil, domain.ErrInvalidPostType
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrMissingTitle
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, domain.ErrMissingContent
	}

	author, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, domain.ErrUnknownAuthor
		}
		return nil, err
	}

	post := &domain.Post{
		ID:        uuid.New(),
		Type:      postType,
		AuthorID:  authorID,
		Author:    author.Name,
		Title:     title,
		Content:   content,
		Tags:      cleanTags(req.Tags),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.announce(ctx, post)
	return post, nil
}

func (s *CommunityService) announce(ctx context.Context, post *domain.Post) {
	if s.feed == nil {
		return
	}
	msg, err := json.Marshal(FeedEvent{Event: EventPostCreated, Post: *post})
	if err != nil {
		slog.ErrorContext(ctx, "encode feed event", "post_id", post.ID, "error", err)
		return
	}
	s.feed.BroadcastMessage(msg)
}

// Seed stores posts when the board is empty. It returns how many were written.
func (s *CommunityService) Seed(ctx context.Context, posts []domain.Post) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for i := range posts {
		if err := s.repo.Create(ctx, &posts[i]); err != nil {
			return i, fmt.Errorf("seed post %q: %w", posts[i].Title, err)
		}
	}
	return len(posts), nil
}
