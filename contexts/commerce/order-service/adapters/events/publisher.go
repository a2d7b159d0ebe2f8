package events

import (
	"context"
	"log/slog"

	"toolhub/contexts/commerce/order-service/ports"
	"toolhub/internal/platform/messaging"
	sharedevents "toolhub/internal/shared/events"
)

const topicOrderEvents = "commerce.order-events"

// Publisher bridges order events from the outbox relay onto the platform bus.
type Publisher struct {
	bus    *messaging.Kafka
	logger *slog.Logger
}

func NewPublisher(bus *messaging.Kafka, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, logger: logger}
}

func (p Publisher) PublishOrderEvent(ctx context.Context, event ports.OrderEvent) error {
	err := p.bus.Publish(ctx, topicOrderEvents, sharedevents.Envelope{
		EventID:       event.EventID,
		EventType:     event.EventType,
		SourceService: "commerce/order-service",
		OccurredAtUTC: event.OccurredAt,
		EntityType:    "order",
		EntityID:      event.OrderID,
		Payload:       event,
	})
	if err != nil {
		return err
	}
	p.logger.Info("order event published",
		"event", "order_event_published",
		"module", "commerce/order-service",
		"layer", "adapter",
		"event_id", event.EventID,
		"event_type", event.EventType,
		"order_id", event.OrderID,
	)
	return nil
}

var _ ports.OrderEventPublisher = (*Publisher)(nil)
