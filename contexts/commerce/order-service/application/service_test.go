package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolhub/contexts/commerce/order-service/adapters/memory"
	domainerrors "toolhub/contexts/commerce/order-service/domain/errors"
	"toolhub/contexts/commerce/order-service/ports"
)

func newService(store *memory.Store) Service {
	return Service{
		Repo:  store,
		IDGen: store,
		Clock: store,
	}
}

func TestCreateAssignsIDAndComputesTotal(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	order, err := service.Create(context.Background(), CreateOrderInput{
		UserEmail: "a@x.com",
		ToolID:    "tool-1",
		ToolName:  "Drill Press",
		Quantity:  3,
		UnitPrice: 25,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.OrderID == "" {
		t.Fatalf("expected assigned order id")
	}
	if order.TotalPrice != 75 {
		t.Fatalf("expected total 75, got %v", order.TotalPrice)
	}
	if order.Status != ports.StatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	service := newService(memory.NewStore())

	cases := []CreateOrderInput{
		{ToolID: "tool-1", Quantity: 1},
		{UserEmail: "a@x.com", Quantity: 1},
		{UserEmail: "a@x.com", ToolID: "tool-1", Quantity: 0},
	}
	for i, input := range cases {
		if _, err := service.Create(context.Background(), input); !errors.Is(err, domainerrors.ErrInvalidRequest) {
			t.Fatalf("case %d: expected invalid request, got %v", i, err)
		}
	}
}

func TestListByEmailReturnsOnlyOwnOrders(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	if _, err := service.Create(context.Background(), CreateOrderInput{
		UserEmail: "a@x.com", ToolID: "tool-1", Quantity: 1, UnitPrice: 10,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := service.Create(context.Background(), CreateOrderInput{
		UserEmail: "b@x.com", ToolID: "tool-2", Quantity: 2, UnitPrice: 5,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, err := service.ListByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("list by email failed: %v", err)
	}
	if len(items) != 1 || items[0].UserEmail != "a@x.com" {
		t.Fatalf("expected exactly the owner's order, got %+v", items)
	}
}

func TestListByEmailAndPaidHonorsFlag(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	unpaid, err := service.Create(context.Background(), CreateOrderInput{
		UserEmail: "a@x.com", ToolID: "tool-1", Quantity: 1, UnitPrice: 10,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	paid, err := service.Create(context.Background(), CreateOrderInput{
		UserEmail: "a@x.com", ToolID: "tool-2", Quantity: 1, UnitPrice: 20,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := service.MarkPaid(context.Background(), paid.OrderID, "txn-1"); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	paidItems, err := service.ListByEmailAndPaid(context.Background(), "a@x.com", true)
	if err != nil {
		t.Fatalf("list paid failed: %v", err)
	}
	if len(paidItems) != 1 || paidItems[0].OrderID != paid.OrderID {
		t.Fatalf("expected only the paid order, got %+v", paidItems)
	}

	unpaidItems, err := service.ListByEmailAndPaid(context.Background(), "a@x.com", false)
	if err != nil {
		t.Fatalf("list unpaid failed: %v", err)
	}
	if len(unpaidItems) != 1 || unpaidItems[0].OrderID != unpaid.OrderID {
		t.Fatalf("expected only the unpaid order, got %+v", unpaidItems)
	}
}

func TestUpsertCreatesWhenAbsent(t *testing.T) {
	service := newService(memory.NewStore())

	quantity := 2
	toolID := "tool-9"
	result, err := service.Upsert(context.Background(), "507f1f77bcf86cd799439011", "a@x.com", ports.OrderPatch{
		Quantity: &quantity,
		ToolID:   &toolID,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !result.Created {
		t.Fatalf("expected created result")
	}
	if result.Order.OrderID != "507f1f77bcf86cd799439011" {
		t.Fatalf("expected keyed order id, got %s", result.Order.OrderID)
	}
	if result.Order.UserEmail != "a@x.com" || result.Order.Quantity != 2 || result.Order.ToolID != "tool-9" {
		t.Fatalf("unexpected created order %+v", result.Order)
	}
}

func TestUpsertOverlaysOnlyPatchFields(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	order, err := service.Create(context.Background(), CreateOrderInput{
		UserEmail: "a@x.com",
		UserName:  "Ada",
		ToolID:    "tool-1",
		Quantity:  1,
		UnitPrice: 10,
		Address:   "1 Main St",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	address := "2 Side St"
	result, err := service.Upsert(context.Background(), order.OrderID, "a@x.com", ports.OrderPatch{
		Address: &address,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if result.Created {
		t.Fatalf("expected overlay, not create")
	}
	if result.Order.Address != "2 Side St" {
		t.Fatalf("expected patched address, got %s", result.Order.Address)
	}
	if result.Order.UserName != "Ada" || result.Order.ToolID != "tool-1" || result.Order.Quantity != 1 {
		t.Fatalf("expected untouched fields preserved, got %+v", result.Order)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	order, err := service.Create(context.Background(), CreateOrderInput{
		UserEmail: "a@x.com", ToolID: "tool-1", Quantity: 1, UnitPrice: 10,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := service.Delete(context.Background(), order.OrderID)
	if err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if !first.Deleted {
		t.Fatalf("expected first delete to remove the order")
	}

	second, err := service.Delete(context.Background(), order.OrderID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if second.Deleted {
		t.Fatalf("expected zero-effect second delete")
	}
}

func TestDeleteAbsentIDSucceeds(t *testing.T) {
	service := newService(memory.NewStore())

	result, err := service.Delete(context.Background(), "507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("delete of absent id failed: %v", err)
	}
	if result.Deleted {
		t.Fatalf("expected zero-match result")
	}
}

func TestMarkPaidAbsentOrder(t *testing.T) {
	service := newService(memory.NewStore())

	if _, err := service.MarkPaid(context.Background(), "missing", "txn-1"); !errors.Is(err, domainerrors.ErrOrderNotFound) {
		t.Fatalf("expected order not found, got %v", err)
	}
}

type stalledRepo struct {
	ports.Repository
}

func (stalledRepo) ListAll(ctx context.Context) ([]ports.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStalledStoreSurfacesTimeout(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Repo:         stalledRepo{Repository: store},
		IDGen:        store,
		Clock:        store,
		StoreTimeout: 10 * time.Millisecond,
	}

	if _, err := service.ListAll(context.Background()); !errors.Is(err, domainerrors.ErrStoreTimeout) {
		t.Fatalf("expected store timeout, got %v", err)
	}
}
