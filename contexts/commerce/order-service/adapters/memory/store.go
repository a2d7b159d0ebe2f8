package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	domainerrors "toolhub/contexts/commerce/order-service/domain/errors"
	"toolhub/contexts/commerce/order-service/ports"
	"toolhub/internal/shared/outbox"
)

type Store struct {
	mu sync.RWMutex

	ordersByID map[string]ports.Order
	outbox     []ports.OutboxMessage
	sequence   uint64
}

func NewStore() *Store {
	return &Store{
		ordersByID: make(map[string]ports.Order),
	}
}

func (s *Store) Create(ctx context.Context, order ports.Order, now time.Time) (ports.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.OrderID == "" {
		order.OrderID = s.nextID("ord")
	}
	order.CreatedAt = now.UTC()
	order.UpdatedAt = now.UTC()
	s.ordersByID[order.OrderID] = order
	s.appendOutboxLocked(ports.EventTypeOrderCreated, order, now)
	return order, nil
}

func (s *Store) ListAll(ctx context.Context) ([]ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectLocked(func(ports.Order) bool { return true }), nil
}

func (s *Store) ListByEmail(ctx context.Context, email string) ([]ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectLocked(func(order ports.Order) bool {
		return order.UserEmail == email
	}), nil
}

func (s *Store) ListByEmailAndPaid(ctx context.Context, email string, paid bool) ([]ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectLocked(func(order ports.Order) bool {
		return order.UserEmail == email && order.Paid == paid
	}), nil
}

func (s *Store) Upsert(ctx context.Context, orderID string, ownerEmail string, patch ports.OrderPatch, now time.Time) (ports.UpsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now = now.UTC()
	existing, ok := s.ordersByID[orderID]
	if !ok {
		order := ports.Order{
			OrderID:   orderID,
			UserEmail: ownerEmail,
			Status:    ports.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyPatch(&order, patch)
		s.ordersByID[orderID] = order
		return ports.UpsertResult{Order: order, Created: true}, nil
	}

	applyPatch(&existing, patch)
	existing.UpdatedAt = now
	s.ordersByID[orderID] = existing
	return ports.UpsertResult{Order: existing, Created: false}, nil
}

func (s *Store) MarkPaid(ctx context.Context, orderID string, transactionID string, now time.Time) (ports.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.ordersByID[orderID]
	if !ok {
		return ports.Order{}, domainerrors.ErrOrderNotFound
	}
	if !order.Paid {
		order.Paid = true
		order.TransactionID = transactionID
		order.UpdatedAt = now.UTC()
		s.ordersByID[orderID] = order
		s.appendOutboxLocked(ports.EventTypeOrderPaid, order, now)
	}
	return order, nil
}

func (s *Store) Delete(ctx context.Context, orderID string) (ports.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ordersByID[orderID]
	if ok {
		delete(s.ordersByID, orderID)
	}
	return ports.DeleteResult{OrderID: orderID, Deleted: ok}, nil
}

func (s *Store) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0, limit)
	for _, row := range s.outbox {
		if row.Status != outbox.StatusPending {
			continue
		}
		items = append(items, row)
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(ctx context.Context, outboxID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.outbox {
		if row.OutboxID == outboxID {
			s.outbox[i].Status = outbox.StatusPublished
			return nil
		}
	}
	return nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	return s.nextID("ord"), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) nextID(prefix string) string {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("%s_%d", prefix, n)
}

func (s *Store) appendOutboxLocked(eventType string, order ports.Order, now time.Time) {
	event := ports.OrderEvent{
		EventID:    s.nextID("evt"),
		EventType:  eventType,
		OrderID:    order.OrderID,
		UserEmail:  order.UserEmail,
		TotalPrice: order.TotalPrice,
		OccurredAt: now.UTC(),
	}
	payload, _ := json.Marshal(event)
	s.outbox = append(s.outbox, ports.OutboxMessage{
		OutboxID:  s.nextID("obx"),
		EventType: eventType,
		Payload:   payload,
		Status:    outbox.StatusPending,
	})
}

func (s *Store) collectLocked(keep func(ports.Order) bool) []ports.Order {
	items := make([]ports.Order, 0, len(s.ordersByID))
	for _, order := range s.ordersByID {
		if keep(order) {
			items = append(items, order)
		}
	}
	sort.Slice(items, func(i int, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return strings.Compare(items[i].OrderID, items[j].OrderID) < 0
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func applyPatch(order *ports.Order, patch ports.OrderPatch) {
	if patch.UserName != nil {
		order.UserName = *patch.UserName
	}
	if patch.ToolID != nil {
		order.ToolID = *patch.ToolID
	}
	if patch.ToolName != nil {
		order.ToolName = *patch.ToolName
	}
	if patch.Quantity != nil {
		order.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		order.UnitPrice = *patch.UnitPrice
	}
	if patch.TotalPrice != nil {
		order.TotalPrice = *patch.TotalPrice
	}
	if patch.Address != nil {
		order.Address = *patch.Address
	}
	if patch.Phone != nil {
		order.Phone = *patch.Phone
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Paid != nil {
		order.Paid = *patch.Paid
	}
	if patch.TransactionID != nil {
		order.TransactionID = *patch.TransactionID
	}
}

var _ ports.Repository = (*Store)(nil)
var _ ports.OutboxRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
