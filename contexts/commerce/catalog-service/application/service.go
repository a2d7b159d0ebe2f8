package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "toolhub/contexts/commerce/catalog-service/domain/errors"
	"toolhub/contexts/commerce/catalog-service/ports"
)

type Service struct {
	Repo   ports.Repository
	IDGen  ports.IDGenerator
	Clock  ports.Clock
	Logger *slog.Logger
}

type CreateToolInput struct {
	Name         string
	Description  string
	ImageURL     string
	UnitPrice    float64
	MinOrderQty  int
	AvailableQty int
}

func (s Service) Create(ctx context.Context, input CreateToolInput) (ports.Tool, error) {
	if strings.TrimSpace(input.Name) == "" || input.UnitPrice <= 0 || input.MinOrderQty <= 0 {
		return ports.Tool{}, domainerrors.ErrInvalidRequest
	}
	if input.AvailableQty < input.MinOrderQty {
		return ports.Tool{}, domainerrors.ErrInvalidRequest
	}

	toolID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Tool{}, err
	}

	now := s.now()
	tool := ports.Tool{
		ToolID:       toolID,
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		UnitPrice:    input.UnitPrice,
		MinOrderQty:  input.MinOrderQty,
		AvailableQty: input.AvailableQty,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.Repo.Create(ctx, tool, now)
	if err != nil {
		return ports.Tool{}, err
	}

	if s.Logger != nil {
		s.Logger.Info("tool added to catalog",
			"event", "catalog_tool_created",
			"module", "commerce/catalog-service",
			"layer", "application",
			"tool_id", created.ToolID,
		)
	}
	return created, nil
}

func (s Service) List(ctx context.Context) ([]ports.Tool, error) {
	return s.Repo.List(ctx)
}

func (s Service) Get(ctx context.Context, toolID string) (ports.Tool, error) {
	toolID = strings.TrimSpace(toolID)
	if toolID == "" {
		return ports.Tool{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.Get(ctx, toolID)
}

func (s Service) Delete(ctx context.Context, toolID string) error {
	toolID = strings.TrimSpace(toolID)
	if toolID == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Repo.Delete(ctx, toolID)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
