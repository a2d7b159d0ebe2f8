package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"toolhub/contexts/identity-access/user-service/application"
	"toolhub/contexts/identity-access/user-service/ports"
	httptransport "toolhub/contexts/identity-access/user-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) UpsertUserHandler(ctx context.Context, email string, req httptransport.UpsertUserRequest) (httptransport.UpsertUserResponse, error) {
	user, err := h.Service.Upsert(ctx, ports.User{
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(req.Name),
		Education: strings.TrimSpace(req.Education),
		Location:  strings.TrimSpace(req.Location),
		Phone:     strings.TrimSpace(req.Phone),
		LinkedIn:  strings.TrimSpace(req.LinkedIn),
	})
	if err != nil {
		return httptransport.UpsertUserResponse{}, err
	}
	resp := httptransport.UpsertUserResponse{Status: "success"}
	resp.Data.User = toDTO(user)
	return resp, nil
}

func (h Handler) GetUserHandler(ctx context.Context, email string) (httptransport.GetUserResponse, error) {
	user, err := h.Service.Get(ctx, strings.TrimSpace(email))
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{
		Status: "success",
		Data:   toDTO(user),
	}, nil
}

func (h Handler) ListUsersHandler(ctx context.Context) (httptransport.UserListResponse, error) {
	items, err := h.Service.ListAll(ctx)
	if err != nil {
		return httptransport.UserListResponse{}, err
	}
	resp := httptransport.UserListResponse{
		Status: "success",
		Data:   make([]httptransport.UserDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, toDTO(item))
	}
	return resp, nil
}

func toDTO(user ports.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		Email:     user.Email,
		Name:      user.Name,
		Education: user.Education,
		Location:  user.Location,
		Phone:     user.Phone,
		LinkedIn:  user.LinkedIn,
		UpdatedAt: user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
