package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogdomainerrors "toolhub/contexts/commerce/catalog-service/domain/errors"
	cataloghttp "toolhub/contexts/commerce/catalog-service/transport/http"
	authzports "toolhub/contexts/identity-access/authorization-service/ports"
)

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Catalog.Handler.ListToolsHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTool(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Catalog.Handler.GetToolHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTool(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.requirePermission(w, r, claims, authzports.PermissionToolsManage) {
		return
	}

	var req cataloghttp.CreateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Catalog.Handler.CreateToolHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTool(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.requirePermission(w, r, claims, authzports.PermissionToolsManage) {
		return
	}

	resp, err := s.modules.Catalog.Handler.DeleteToolHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogdomainerrors.ErrInvalidRequest):
		writeCatalogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, catalogdomainerrors.ErrToolNotFound):
		writeCatalogError(w, http.StatusNotFound, "tool_not_found", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
