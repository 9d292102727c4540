package domain

import "context"

// PostRepository stores board posts. List returns newest first.
type PostRepository interface {
	List(ctx context.Context, filter Filter) ([]Post, error)
	Create(ctx context.Context, post *Post) error
	Count(ctx context.Context) (int, error)
}

// Broadcaster pushes an encoded event to every live feed subscriber.
type Broadcaster interface {
	BroadcastMessage(message []byte)
}
