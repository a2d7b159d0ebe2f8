package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"toolhub/contexts/identity-access/token-service/application"
	domainerrors "toolhub/contexts/identity-access/token-service/domain/errors"
	httptransport "toolhub/contexts/identity-access/token-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.TokenResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return httptransport.TokenResponse{}, domainerrors.ErrInvalidRequest
	}
	issued, err := h.Service.Issue(email)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	resp := httptransport.TokenResponse{Status: "success"}
	resp.Data.AccessToken = issued.AccessToken
	resp.Data.ExpiresAt = issued.ExpiresAt.UTC().Format(time.RFC3339)
	return resp, nil
}
