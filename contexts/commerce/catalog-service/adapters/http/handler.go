package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"toolhub/contexts/commerce/catalog-service/application"
	"toolhub/contexts/commerce/catalog-service/ports"
	httptransport "toolhub/contexts/commerce/catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateToolHandler(ctx context.Context, req httptransport.CreateToolRequest) (httptransport.CreateToolResponse, error) {
	tool, err := h.Service.Create(ctx, application.CreateToolInput{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		UnitPrice:    req.UnitPrice,
		MinOrderQty:  req.MinOrderQty,
		AvailableQty: req.AvailableQty,
	})
	if err != nil {
		return httptransport.CreateToolResponse{}, err
	}
	return httptransport.CreateToolResponse{
		Status: "success",
		Data:   toDTO(tool),
	}, nil
}

func (h Handler) ListToolsHandler(ctx context.Context) (httptransport.ToolListResponse, error) {
	items, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ToolListResponse{}, err
	}
	resp := httptransport.ToolListResponse{
		Status: "success",
		Data:   make([]httptransport.ToolDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, toDTO(item))
	}
	return resp, nil
}

func (h Handler) GetToolHandler(ctx context.Context, toolID string) (httptransport.GetToolResponse, error) {
	tool, err := h.Service.Get(ctx, strings.TrimSpace(toolID))
	if err != nil {
		return httptransport.GetToolResponse{}, err
	}
	return httptransport.GetToolResponse{
		Status: "success",
		Data:   toDTO(tool),
	}, nil
}

func (h Handler) DeleteToolHandler(ctx context.Context, toolID string) (httptransport.DeleteToolResponse, error) {
	if err := h.Service.Delete(ctx, strings.TrimSpace(toolID)); err != nil {
		return httptransport.DeleteToolResponse{}, err
	}
	resp := httptransport.DeleteToolResponse{Status: "success"}
	resp.Data.ToolID = strings.TrimSpace(toolID)
	resp.Data.Deleted = true
	return resp, nil
}

func toDTO(tool ports.Tool) httptransport.ToolDTO {
	return httptransport.ToolDTO{
		ToolID:       tool.ToolID,
		Name:         tool.Name,
		Description:  tool.Description,
		ImageURL:     tool.ImageURL,
		UnitPrice:    tool.UnitPrice,
		MinOrderQty:  tool.MinOrderQty,
		AvailableQty: tool.AvailableQty,
		CreatedAt:    tool.CreatedAt.UTC().Format(time.RFC3339),
	}
}
