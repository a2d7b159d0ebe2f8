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

type Tool struct {
	ToolID       string
	Name         string
	Description  string
	ImageURL     string
	UnitPrice    float64
	MinOrderQty  int
	AvailableQty int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Repository interface {
	Create(ctx context.Context, tool Tool, now time.Time) (Tool, error)
	List(ctx context.Context) ([]Tool, error)
	Get(ctx context.Context, toolID string) (Tool, error)
	Delete(ctx context.Context, toolID string) error
}
