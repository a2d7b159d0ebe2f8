package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type User struct {
	Email     string
	Name      string
	Education string
	Location  string
	Phone     string
	LinkedIn  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	Upsert(ctx context.Context, user User, now time.Time) (User, error)
	Get(ctx context.Context, email string) (User, error)
	ListAll(ctx context.Context) ([]User, error)
}
