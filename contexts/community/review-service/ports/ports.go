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

type Review struct {
	ReviewID  string
	UserEmail string
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

type Repository interface {
	Add(ctx context.Context, review Review, now time.Time) (Review, error)
	ListAll(ctx context.Context) ([]Review, error)
}
