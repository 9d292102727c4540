package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	authDomain "github.com/saransh1220/flowart/internal/modules/auth/domain"
	"github.com/saransh1220/flowart/internal/modules/community/domain"
	"github.com/saransh1220/flowart/internal/modules/community/infrastructure/fixtures"
	directory "github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPosts keeps posts newest first, as the Postgres repository returns them.
type memoryPosts struct {
	posts     []domain.Post
	createErr error
	listErr   error
}

func (m *memoryPosts) List(_ context.Context, filter domain.Filter) ([]domain.Post, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return filter.Apply(m.posts), nil
}

func (m *memoryPosts) Create(_ context.Context, post *domain.Post) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.posts = append([]domain.Post{*post}, m.posts...)
	return nil
}

func (m *memoryPosts) Count(context.Context) (int, error) { return len(m.posts), nil }

type stubAuthors map[uuid.UUID]string

func (s stubAuthors) FindByID(_ context.Context, id uuid.UUID) (*authDomain.User, error) {
	name, ok := s[id]
	if !ok {
		return nil, authDomain.ErrUserNotFound
	}
	return &authDomain.User{Artist: directory.Artist{ID: id.String(), Name: name}}, nil
}

func (s stubAuthors) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s[id]
	return ok, nil
}

type recordingFeed struct {
	mu       sync.Mutex
	messages [][]byte
}

func (f *recordingFeed) BroadcastMessage(message []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
}

func TestCommunityService_ListAndTags(t *testing.T) {
	svc := NewCommunityService(&memoryPosts{posts: fixtures.Posts()}, stubAuthors{}, nil)
	ctx := context.Background()

	all, err := svc.List(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	calls, err := svc.List(ctx, domain.Filter{Tag: " Workshop ", Type: "Open Call"})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "Yuki Tanaka", calls[0].Author)

	none, err := svc.List(ctx, domain.Filter{Tag: "Workshop", Type: "Project Update"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, "All", tags[0])
	assert.Equal(t, "Residency", tags[1])
}

func TestCommunityService_ListError(t *testing.T) {
	svc := NewCommunityService(&memoryPosts{listErr: errors.New("db down")}, stubAuthors{}, nil)

	_, err := svc.List(context.Background(), domain.Filter{})
	assert.EqualError(t, err, "db down")
	_, err = svc.Tags(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestCommunityService_Create(t *testing.T) {
	author := uuid.New()
	repo := &memoryPosts{posts: fixtures.Posts()}
	feed := &recordingFeed{}
	svc := NewCommunityService(repo, stubAuthors{author: "Jamal Washington"}, feed)
	svc.now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }

	post, err := svc.Create(context.Background(), author, CreatePostRequest{
		Type:    "Project Update",
		Title:   "  Mural complete ",
		Content: "Finished the east wall.",
		Tags:    []string{"Mural", " Mural", "", "All", "Street Art"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mural complete", post.Title)
	assert.Equal(t, "Jamal Washington", post.Author)
	assert.Equal(t, []string{"Mural", "Street Art"}, post.Tags)

	latest, err := svc.List(context.Background(), domain.Filter{})
	require.NoError(t, err)
	assert.Equal(t, post.ID, latest[0].ID)

	tags, err := svc.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Mural", "Street Art"}, tags[:3])

	require.Len(t, feed.messages, 1)
	var event FeedEvent
	require.NoError(t, json.Unmarshal(feed.messages[0], &event))
	assert.Equal(t, EventPostCreated, event.Event)
	assert.Equal(t, post.ID, event.Post.ID)
}

func TestCommunityService_CreateRejections(t *testing.T) {
	author := uuid.New()
	feed := &recordingFeed{}
	svc := NewCommunityService(&memoryPosts{}, stubAuthors{author: "A"}, feed)
	ctx := context.Background()

	_, err := svc.Create(ctx, author, CreatePostRequest{Type: "Rumour", Title: "t", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrInvalidPostType)

	_, err = svc.Create(ctx, author, CreatePostRequest{Type: "Open Call", Title: " ", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrMissingTitle)

	_, err = svc.Create(ctx, author, CreatePostRequest{Type: "Open Call", Title: "t"})
	assert.ErrorIs(t, err, domain.ErrMissingContent)

	_, err = svc.Create(ctx, uuid.New(), CreatePostRequest{Type: "Open Call", Title: "t", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrUnknownAuthor)

	assert.Empty(t, feed.messages)
}

func TestCommunityService_CreateStoreError(t *testing.T) {
	author := uuid.New()
	feed := &recordingFeed{}
	svc := NewCommunityService(&memoryPosts{createErr: errors.New("insert failed")}, stubAuthors{author: "A"}, feed)

	_, err := svc.Create(context.Background(), author, CreatePostRequest{Type: "Open Call", Title: "t", Content: "c"})
	assert.EqualError(t, err, "insert failed")
	assert.Empty(t, feed.messages)
}

func TestCommunityService_Seed(t *testing.T) {
	repo := &memoryPosts{}
	svc := NewCommunityService(repo, stubAuthors{}, nil)

	n, err := svc.Seed(context.Background(), fixtures.Posts())
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = svc.Seed(context.Background(), fixtures.Posts())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, repo.posts, 5)

	failing := NewCommunityService(&memoryPosts{createErr: errors.New("fk")}, stubAuthors{}, nil)
	_, err = failing.Seed(context.Background(), fixtures.Posts())
	assert.ErrorContains(t, err, "seed post")
}
