package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	authzdomainerrors "toolhub/contexts/identity-access/authorization-service/domain/errors"
	authzports "toolhub/contexts/identity-access/authorization-service/ports"
	authzhttp "toolhub/contexts/identity-access/authorization-service/transport/http"
	tokendomainerrors "toolhub/contexts/identity-access/token-service/domain/errors"
	tokenhttp "toolhub/contexts/identity-access/token-service/transport/http"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req tokenhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTokenError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Tokens.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.requirePermission(w, r, claims, authzports.PermissionUsersGrant) {
		return
	}

	resp, err := s.modules.Authorization.Handler.ListRolesHandler(r.Context(), r.PathValue("email"))
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGrantRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req authzhttp.GrantRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthzError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Authorization.Handler.GrantRoleHandler(r.Context(), r.PathValue("email"), claims.Email, req)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevokeRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req authzhttp.RevokeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthzError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Authorization.Handler.RevokeRoleHandler(r.Context(), r.PathValue("email"), claims.Email, req)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeTokenDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tokendomainerrors.ErrInvalidRequest):
		writeTokenError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeTokenError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeTokenError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, tokenhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeAuthzDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzdomainerrors.ErrInvalidRequest):
		writeAuthzError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, authzdomainerrors.ErrRoleNotFound):
		writeAuthzError(w, http.StatusNotFound, "role_not_found", err.Error())
	case errors.Is(err, authzdomainerrors.ErrRoleAlreadyAssigned),
		errors.Is(err, authzdomainerrors.ErrRoleNotAssigned):
		writeAuthzError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, authzdomainerrors.ErrForbidden):
		writeAuthzError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeAuthzError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAuthzError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authzhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
