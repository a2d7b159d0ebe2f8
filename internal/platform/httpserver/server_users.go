package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	authzports "toolhub/contexts/identity-access/authorization-service/ports"
	userdomainerrors "toolhub/contexts/identity-access/user-service/domain/errors"
	userhttp "toolhub/contexts/identity-access/user-service/transport/http"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.requirePermission(w, r, claims, authzports.PermissionUsersList) {
		return
	}

	resp, err := s.modules.Users.Handler.ListUsersHandler(r.Context())
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	email := r.PathValue("email")
	if !s.authorizeOwner(w, claims, email) {
		return
	}

	resp, err := s.modules.Users.Handler.GetUserHandler(r.Context(), email)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleUpsertUser saves the caller's profile and hands back a fresh access
// token, mirroring a login refresh.
func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	email := r.PathValue("email")
	if !s.authorizeOwner(w, claims, email) {
		return
	}

	var req userhttp.UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Users.Handler.UpsertUserHandler(r.Context(), email, req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	if issued, err := s.modules.Tokens.Service.Issue(email); err == nil {
		resp.Data.AccessToken = issued.AccessToken
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userdomainerrors.ErrInvalidRequest):
		writeUserError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, userdomainerrors.ErrUserNotFound):
		writeUserError(w, http.StatusNotFound, "user_not_found", err.Error())
	default:
		writeUserError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeUserError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, userhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
