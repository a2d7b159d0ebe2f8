package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "toolhub/contexts/commerce/order-service/domain/errors"
	"toolhub/contexts/commerce/order-service/ports"
)

type Service struct {
	Repo         ports.Repository
	IDGen        ports.IDGenerator
	Clock        ports.Clock
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

type CreateOrderInput struct {
	UserEmail string
	UserName  string
	ToolID    string
	ToolName  string
	Quantity  int
	UnitPrice float64
	Address   string
	Phone     string
}

func (s Service) Create(ctx context.Context, input CreateOrderInput) (ports.Order, error) {
	if strings.TrimSpace(input.UserEmail) == "" ||
		strings.TrimSpace(input.ToolID) == "" ||
		input.Quantity <= 0 {
		return ports.Order{}, domainerrors.ErrInvalidRequest
	}

	orderID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Order{}, err
	}

	now := s.now()
	order := ports.Order{
		OrderID:    orderID,
		UserEmail:  strings.TrimSpace(input.UserEmail),
		UserName:   strings.TrimSpace(input.UserName),
		ToolID:     strings.TrimSpace(input.ToolID),
		ToolName:   strings.TrimSpace(input.ToolName),
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		TotalPrice: float64(input.Quantity) * input.UnitPrice,
		Address:    strings.TrimSpace(input.Address),
		Phone:      strings.TrimSpace(input.Phone),
		Status:     ports.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	created, err := s.Repo.Create(storeCtx, order, now)
	if err != nil {
		return ports.Order{}, s.mapStoreError(err)
	}

	ResolveLogger(s.Logger).Info("order created",
		"event", "order_created",
		"module", "commerce/order-service",
		"layer", "application",
		"order_id", created.OrderID,
		"user_email", created.UserEmail,
	)
	return created, nil
}

func (s Service) ListAll(ctx context.Context) ([]ports.Order, error) {
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	items, err := s.Repo.ListAll(storeCtx)
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	return items, nil
}

func (s Service) ListByEmail(ctx context.Context, email string) ([]ports.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	items, err := s.Repo.ListByEmail(storeCtx, email)
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	return items, nil
}

func (s Service) ListByEmailAndPaid(ctx context.Context, email string, paid bool) ([]ports.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	items, err := s.Repo.ListByEmailAndPaid(storeCtx, email, paid)
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	return items, nil
}

func (s Service) Upsert(ctx context.Context, orderID string, ownerEmail string, patch ports.OrderPatch) (ports.UpsertResult, error) {
	orderID = strings.TrimSpace(orderID)
	ownerEmail = strings.TrimSpace(ownerEmail)
	if orderID == "" || ownerEmail == "" {
		return ports.UpsertResult{}, domainerrors.ErrInvalidRequest
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return ports.UpsertResult{}, domainerrors.ErrInvalidRequest
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	result, err := s.Repo.Upsert(storeCtx, orderID, ownerEmail, patch, s.now())
	if err != nil {
		return ports.UpsertResult{}, s.mapStoreError(err)
	}
	return result, nil
}

func (s Service) MarkPaid(ctx context.Context, orderID string, transactionID string) (ports.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || strings.TrimSpace(transactionID) == "" {
		return ports.Order{}, domainerrors.ErrInvalidRequest
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	order, err := s.Repo.MarkPaid(storeCtx, orderID, strings.TrimSpace(transactionID), s.now())
	if err != nil {
		return ports.Order{}, s.mapStoreError(err)
	}

	ResolveLogger(s.Logger).Info("order marked paid",
		"event", "order_marked_paid",
		"module", "commerce/order-service",
		"layer", "application",
		"order_id", order.OrderID,
	)
	return order, nil
}

func (s Service) Delete(ctx context.Context, orderID string) (ports.DeleteResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ports.DeleteResult{}, domainerrors.ErrInvalidRequest
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	result, err := s.Repo.Delete(storeCtx, orderID)
	if err != nil {
		return ports.DeleteResult{}, s.mapStoreError(err)
	}
	return result, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

// storeContext bounds every repository call so a stalled store surfaces as a
// timeout instead of hanging the request.
func (s Service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.StoreTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func (s Service) mapStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrStoreTimeout
	}
	return err
}
