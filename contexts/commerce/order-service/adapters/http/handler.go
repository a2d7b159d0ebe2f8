package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"toolhub/contexts/commerce/order-service/application"
	"toolhub/contexts/commerce/order-service/ports"
	httptransport "toolhub/contexts/commerce/order-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateOrderHandler(ctx context.Context, req httptransport.CreateOrderRequest) (httptransport.CreateOrderResponse, error) {
	order, err := h.Service.Create(ctx, application.CreateOrderInput{
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		ToolID:    req.ToolID,
		ToolName:  req.ToolName,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Address:   req.Address,
		Phone:     req.Phone,
	})
	if err != nil {
		return httptransport.CreateOrderResponse{}, err
	}
	return httptransport.CreateOrderResponse{
		Status: "success",
		Data:   toDTO(order),
	}, nil
}

func (h Handler) ListAllOrdersHandler(ctx context.Context) (httptransport.OrderListResponse, error) {
	items, err := h.Service.ListAll(ctx)
	if err != nil {
		return httptransport.OrderListResponse{}, err
	}
	return toListResponse(items), nil
}

func (h Handler) ListOrdersByEmailHandler(ctx context.Context, email string) (httptransport.OrderListResponse, error) {
	items, err := h.Service.ListByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return httptransport.OrderListResponse{}, err
	}
	return toListResponse(items), nil
}

func (h Handler) ListOrdersByEmailAndPaidHandler(ctx context.Context, email string, paid bool) (httptransport.OrderListResponse, error) {
	items, err := h.Service.ListByEmailAndPaid(ctx, strings.TrimSpace(email), paid)
	if err != nil {
		return httptransport.OrderListResponse{}, err
	}
	return toListResponse(items), nil
}

func (h Handler) UpsertOrderHandler(
	ctx context.Context,
	orderID string,
	ownerEmail string,
	req httptransport.UpsertOrderRequest,
) (httptransport.UpsertOrderResponse, error) {
	result, err := h.Service.Upsert(ctx, strings.TrimSpace(orderID), strings.TrimSpace(ownerEmail), ports.OrderPatch{
		UserName:      req.UserName,
		ToolID:        req.ToolID,
		ToolName:      req.ToolName,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		TotalPrice:    req.TotalPrice,
		Address:       req.Address,
		Phone:         req.Phone,
		Status:        req.Status,
		Paid:          req.Paid,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return httptransport.UpsertOrderResponse{}, err
	}
	resp := httptransport.UpsertOrderResponse{Status: "success"}
	resp.Data.Order = toDTO(result.Order)
	resp.Data.Created = result.Created
	return resp, nil
}

func (h Handler) PayOrderHandler(ctx context.Context, orderID string, req httptransport.PayOrderRequest) (httptransport.PayOrderResponse, error) {
	order, err := h.Service.MarkPaid(ctx, strings.TrimSpace(orderID), strings.TrimSpace(req.TransactionID))
	if err != nil {
		return httptransport.PayOrderResponse{}, err
	}
	return httptransport.PayOrderResponse{
		Status: "success",
		Data:   toDTO(order),
	}, nil
}

func (h Handler) DeleteOrderHandler(ctx context.Context, orderID string) (httptransport.DeleteOrderResponse, error) {
	result, err := h.Service.Delete(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return httptransport.DeleteOrderResponse{}, err
	}
	resp := httptransport.DeleteOrderResponse{Status: "success"}
	resp.Data.OrderID = result.OrderID
	resp.Data.Deleted = result.Deleted
	return resp, nil
}

func toDTO(order ports.Order) httptransport.OrderDTO {
	return httptransport.OrderDTO{
		OrderID:       order.OrderID,
		UserEmail:     order.UserEmail,
		UserName:      order.UserName,
		ToolID:        order.ToolID,
		ToolName:      order.ToolName,
		Quantity:      order.Quantity,
		UnitPrice:     order.UnitPrice,
		TotalPrice:    order.TotalPrice,
		Address:       order.Address,
		Phone:         order.Phone,
		Status:        order.Status,
		Paid:          order.Paid,
		TransactionID: order.TransactionID,
		CreatedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     order.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toListResponse(items []ports.Order) httptransport.OrderListResponse {
	resp := httptransport.OrderListResponse{
		Status: "success",
		Data:   make([]httptransport.OrderDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, toDTO(item))
	}
	return resp
}
