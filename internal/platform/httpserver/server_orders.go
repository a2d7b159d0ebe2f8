package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	orderdomainerrors "toolhub/contexts/commerce/order-service/domain/errors"
	orderhttp "toolhub/contexts/commerce/order-service/transport/http"
	authzports "toolhub/contexts/identity-access/authorization-service/ports"
)

func (s *Server) handleListAllOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.requirePermission(w, r, claims, authzports.PermissionOrdersListAll) {
		return
	}

	resp, err := s.modules.Orders.Handler.ListAllOrdersHandler(r.Context())
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListOrdersByEmail(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	email := r.PathValue("email")
	if !s.authorizeOwner(w, claims, email) {
		return
	}

	resp, err := s.modules.Orders.Handler.ListOrdersByEmailHandler(r.Context(), email)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListOrdersByEmailAndPaid(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	email := r.PathValue("email")
	if !s.authorizeOwner(w, claims, email) {
		return
	}

	paid, err := strconv.ParseBool(r.PathValue("is_paid"))
	if err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_paid_flag", "is_paid must be a boolean")
		return
	}

	resp, err := s.modules.Orders.Handler.ListOrdersByEmailAndPaidHandler(r.Context(), email, paid)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req orderhttp.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if !s.authorizeOwner(w, claims, req.UserEmail) {
		return
	}

	resp, err := s.modules.Orders.Handler.CreateOrderHandler(r.Context(), req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpsertOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorizeOwner(w, claims, r.Header.Get("email")) {
		return
	}

	var req orderhttp.UpsertOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Orders.Handler.UpsertOrderHandler(r.Context(), r.PathValue("id"), claims.Email, req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePayOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorizeOwner(w, claims, r.Header.Get("email")) {
		return
	}

	var req orderhttp.PayOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Orders.Handler.PayOrderHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorizeOwner(w, claims, r.Header.Get("email")) {
		return
	}

	resp, err := s.modules.Orders.Handler.DeleteOrderHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderdomainerrors.ErrInvalidRequest):
		writeOrderError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, orderdomainerrors.ErrOrderNotFound):
		writeOrderError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, orderdomainerrors.ErrStoreTimeout):
		writeOrderError(w, http.StatusGatewayTimeout, "store_timeout", err.Error())
	default:
		writeOrderError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOrderError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, orderhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
