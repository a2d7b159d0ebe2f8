package unit

import (
	"context"
	"errors"
	"testing"

	catalogservice "toolhub/contexts/commerce/catalog-service"
	domainerrors "toolhub/contexts/commerce/catalog-service/domain/errors"
	httptransport "toolhub/contexts/commerce/catalog-service/transport/http"
)

func TestCatalogCreateAndGetTool(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateToolHandler(ctx, httptransport.CreateToolRequest{
		Name:         "Cordless Drill",
		Description:  "18V compact drill",
		UnitPrice:    89.99,
		MinOrderQty:  1,
		AvailableQty: 40,
	})
	if err != nil {
		t.Fatalf("create tool failed: %v", err)
	}
	if created.Data.ToolID == "" {
		t.Fatalf("expected assigned tool id")
	}

	got, err := module.Handler.GetToolHandler(ctx, created.Data.ToolID)
	if err != nil {
		t.Fatalf("get tool failed: %v", err)
	}
	if got.Data.Name != "Cordless Drill" {
		t.Fatalf("unexpected tool name %q", got.Data.Name)
	}
}

func TestCatalogCreateValidatesInput(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil)
	ctx := context.Background()

	invalid := []httptransport.CreateToolRequest{
		{UnitPrice: 10, MinOrderQty: 1, AvailableQty: 5},
		{Name: "Saw", UnitPrice: 0, MinOrderQty: 1, AvailableQty: 5},
		{Name: "Saw", UnitPrice: 10, MinOrderQty: 0, AvailableQty: 5},
		{Name: "Saw", UnitPrice: 10, MinOrderQty: 10, AvailableQty: 5},
	}
	for _, req := range invalid {
		if _, err := module.Handler.CreateToolHandler(ctx, req); !errors.Is(err, domainerrors.ErrInvalidRequest) {
			t.Fatalf("request %+v: expected ErrInvalidRequest, got %v", req, err)
		}
	}
}

func TestCatalogDeleteAbsentToolFails(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil)

	_, err := module.Handler.DeleteToolHandler(context.Background(), "tool_404")
	if !errors.Is(err, domainerrors.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestCatalogListReturnsCreatedTools(t *testing.T) {
	module := catalogservice.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, name := range []string{"Drill", "Sander", "Jigsaw"} {
		if _, err := module.Handler.CreateToolHandler(ctx, httptransport.CreateToolRequest{
			Name:         name,
			UnitPrice:    10,
			MinOrderQty:  1,
			AvailableQty: 5,
		}); err != nil {
			t.Fatalf("create %q failed: %v", name, err)
		}
	}

	list, err := module.Handler.ListToolsHandler(ctx)
	if err != nil {
		t.Fatalf("list tools failed: %v", err)
	}
	if len(list.Data) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(list.Data))
	}
}
