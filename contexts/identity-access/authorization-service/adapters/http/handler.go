package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"toolhub/contexts/identity-access/authorization-service/application"
	httptransport "toolhub/contexts/identity-access/authorization-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GrantRoleHandler(ctx context.Context, email string, actorEmail string, req httptransport.GrantRoleRequest) (httptransport.GrantRoleResponse, error) {
	assignment, err := h.Service.GrantRole(ctx, strings.TrimSpace(email), strings.TrimSpace(actorEmail), strings.TrimSpace(req.RoleID))
	if err != nil {
		return httptransport.GrantRoleResponse{}, err
	}
	resp := httptransport.GrantRoleResponse{Status: "success"}
	resp.Data.Email = assignment.Email
	resp.Data.RoleID = assignment.RoleID
	resp.Data.GrantedBy = assignment.GrantedBy
	resp.Data.GrantedAt = assignment.GrantedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func (h Handler) RevokeRoleHandler(ctx context.Context, email string, actorEmail string, req httptransport.RevokeRoleRequest) (httptransport.RevokeRoleResponse, error) {
	err := h.Service.RevokeRole(ctx, strings.TrimSpace(email), strings.TrimSpace(actorEmail), strings.TrimSpace(req.RoleID))
	if err != nil {
		return httptransport.RevokeRoleResponse{}, err
	}
	resp := httptransport.RevokeRoleResponse{Status: "success"}
	resp.Data.Email = strings.TrimSpace(email)
	resp.Data.RoleID = strings.TrimSpace(req.RoleID)
	resp.Data.Revoked = true
	return resp, nil
}

func (h Handler) ListRolesHandler(ctx context.Context, email string) (httptransport.ListRolesResponse, error) {
	assignments, err := h.Service.ListRoles(ctx, strings.TrimSpace(email))
	if err != nil {
		return httptransport.ListRolesResponse{}, err
	}
	resp := httptransport.ListRolesResponse{Status: "success"}
	resp.Data.Email = strings.TrimSpace(email)
	resp.Data.Roles = make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		resp.Data.Roles = append(resp.Data.Roles, assignment.RoleID)
	}
	return resp, nil
}

func (h Handler) AdminCheckHandler(ctx context.Context, email string) (httptransport.AdminCheckResponse, error) {
	admin, err := h.Service.IsAdmin(ctx, strings.TrimSpace(email))
	if err != nil {
		return httptransport.AdminCheckResponse{}, err
	}
	resp := httptransport.AdminCheckResponse{Status: "success"}
	resp.Data.Email = strings.TrimSpace(email)
	resp.Data.Admin = admin
	return resp, nil
}
