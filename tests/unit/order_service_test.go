package unit

import (
	"context"
	"errors"
	"testing"

	orderservice "toolhub/contexts/commerce/order-service"
	domainerrors "toolhub/contexts/commerce/order-service/domain/errors"
	httptransport "toolhub/contexts/commerce/order-service/transport/http"
)

func TestOrderServiceCreateComputesTotal(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil)
	ctx := context.Background()

	resp, err := module.Handler.CreateOrderHandler(ctx, httptransport.CreateOrderRequest{
		UserEmail: "alice@example.com",
		UserName:  "Alice",
		ToolID:    "tool_1",
		ToolName:  "Cordless Drill",
		Quantity:  3,
		UnitPrice: 25.5,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if resp.Data.OrderID == "" {
		t.Fatalf("expected assigned order id")
	}
	if resp.Data.TotalPrice != 76.5 {
		t.Fatalf("expected total 76.5, got %v", resp.Data.TotalPrice)
	}
	if resp.Data.Status != "pending" {
		t.Fatalf("expected pending status, got %q", resp.Data.Status)
	}
}

func TestOrderServiceListByEmailScopesToOwner(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil)
	ctx := context.Background()

	seed := []httptransport.CreateOrderRequest{
		{UserEmail: "alice@example.com", ToolID: "tool_1", Quantity: 1, UnitPrice: 10},
		{UserEmail: "alice@example.com", ToolID: "tool_2", Quantity: 2, UnitPrice: 4},
		{UserEmail: "bob@example.com", ToolID: "tool_3", Quantity: 1, UnitPrice: 8},
	}
	for _, req := range seed {
		if _, err := module.Handler.CreateOrderHandler(ctx, req); err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	resp, err := module.Handler.ListOrdersByEmailHandler(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("list by email failed: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 orders for alice, got %d", len(resp.Data))
	}
	for _, order := range resp.Data {
		if order.UserEmail != "alice@example.com" {
			t.Fatalf("foreign order in owner listing: %q", order.UserEmail)
		}
	}
}

func TestOrderServicePaidFilterHonorsFlag(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateOrderHandler(ctx, httptransport.CreateOrderRequest{
		UserEmail: "alice@example.com", ToolID: "tool_1", Quantity: 1, UnitPrice: 10,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := module.Handler.CreateOrderHandler(ctx, httptransport.CreateOrderRequest{
		UserEmail: "alice@example.com", ToolID: "tool_2", Quantity: 1, UnitPrice: 5,
	}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := module.Handler.PayOrderHandler(ctx, created.Data.OrderID, httptransport.PayOrderRequest{
		TransactionID: "txn_100",
	}); err != nil {
		t.Fatalf("pay order failed: %v", err)
	}

	paid, err := module.Handler.ListOrdersByEmailAndPaidHandler(ctx, "alice@example.com", true)
	if err != nil {
		t.Fatalf("list paid failed: %v", err)
	}
	if len(paid.Data) != 1 || paid.Data[0].OrderID != created.Data.OrderID {
		t.Fatalf("expected the paid order only, got %+v", paid.Data)
	}

	unpaid, err := module.Handler.ListOrdersByEmailAndPaidHandler(ctx, "alice@example.com", false)
	if err != nil {
		t.Fatalf("list unpaid failed: %v", err)
	}
	if len(unpaid.Data) != 1 || unpaid.Data[0].OrderID == created.Data.OrderID {
		t.Fatalf("expected the unpaid order only, got %+v", unpaid.Data)
	}
}

func TestOrderServiceUpsertMergeSemantics(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil)
	ctx := context.Background()

	quantity := 4
	first, err := module.Handler.UpsertOrderHandler(ctx, "507f1f77bcf86cd799439011", "alice@example.com", httptransport.UpsertOrderRequest{
		ToolID:   stringPtr("tool_1"),
		Quantity: &quantity,
	})
	if err != nil {
		t.Fatalf("upsert create failed: %v", err)
	}
	if !first.Data.Created {
		t.Fatalf("expected create on absent id")
	}
	if first.Data.Order.UserEmail != "alice@example.com" {
		t.Fatalf("expected owner stamped on create, got %q", first.Data.Order.UserEmail)
	}

	address := "12 Mill Road"
	second, err := module.Handler.UpsertOrderHandler(ctx, "507f1f77bcf86cd799439011", "alice@example.com", httptransport.UpsertOrderRequest{
		Address: &address,
	})
	if err != nil {
		t.Fatalf("upsert overlay failed: %v", err)
	}
	if second.Data.Created {
		t.Fatalf("expected overlay on present id")
	}
	if second.Data.Order.Address != "12 Mill Road" {
		t.Fatalf("expected address overlay, got %q", second.Data.Order.Address)
	}
	if second.Data.Order.Quantity != 4 || second.Data.Order.ToolID != "tool_1" {
		t.Fatalf("expected untouched fields preserved, got %+v", second.Data.Order)
	}
}

func TestOrderServiceDeleteIsIdempotent(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateOrderHandler(ctx, httptransport.CreateOrderRequest{
		UserEmail: "alice@example.com", ToolID: "tool_1", Quantity: 1, UnitPrice: 10,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	first, err := module.Handler.DeleteOrderHandler(ctx, created.Data.OrderID)
	if err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if !first.Data.Deleted {
		t.Fatalf("expected first delete to remove the order")
	}

	second, err := module.Handler.DeleteOrderHandler(ctx, created.Data.OrderID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if second.Data.Deleted {
		t.Fatalf("expected second delete to be a zero-effect success")
	}
}

func TestOrderServicePayAbsentOrderFails(t *testing.T) {
	module := orderservice.NewInMemoryModule(nil)

	_, err := module.Handler.PayOrderHandler(context.Background(), "ord_404", httptransport.PayOrderRequest{
		TransactionID: "txn_1",
	})
	if !errors.Is(err, domainerrors.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func stringPtr(s string) *string { return &s }
