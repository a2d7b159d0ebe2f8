package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Post struct {
	PostID      string
	Title       string
	Author      string
	Summary     string
	Content     string
	ImageURL    string
	PublishedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, post Post, now time.Time) (Post, error)
	Get(ctx context.Context, postID string) (Post, error)
	ListAll(ctx context.Context) ([]Post, error)
}
