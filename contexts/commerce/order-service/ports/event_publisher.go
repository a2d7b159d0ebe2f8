package ports

import (
	"context"
	"time"
)

const (
	EventTypeOrderCreated = "order_created"
	EventTypeOrderPaid    = "order_paid"
)

// OrderEvent is the payload written to the outbox on order state changes.
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	UserEmail  string    `json:"user_email"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes module events through the outbox/event bus
// adapter.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}

type OutboxMessage struct {
	OutboxID   string
	EventType  string
	Payload    []byte
	Status     string
	RetryCount int
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, now time.Time) error
}
