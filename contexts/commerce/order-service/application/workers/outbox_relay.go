package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"toolhub/contexts/commerce/order-service/application"
	"toolhub/contexts/commerce/order-service/ports"
)

// OutboxRelay drains pending order outbox rows and publishes them to the
// event bus. RunOnce stops at the first failure so the pending rows are
// retried on the next tick.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.OrderEventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("order outbox list failed",
			"event", "order_outbox_list_failed",
			"module", "commerce/order-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var event ports.OrderEvent
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			return err
		}
		if err := r.Publisher.PublishOrderEvent(ctx, event); err != nil {
			logger.Error("order outbox publish failed",
				"event", "order_outbox_publish_failed",
				"module", "commerce/order-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			return err
		}
	}
	return nil
}
