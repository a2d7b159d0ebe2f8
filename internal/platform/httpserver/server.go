package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	catalogservice "toolhub/contexts/commerce/catalog-service"
	orderservice "toolhub/contexts/commerce/order-service"
	blogservice "toolhub/contexts/community/blog-service"
	reviewservice "toolhub/contexts/community/review-service"
	authorization "toolhub/contexts/identity-access/authorization-service"
	tokenservice "toolhub/contexts/identity-access/token-service"
	tokenerrors "toolhub/contexts/identity-access/token-service/domain/errors"
	tokenports "toolhub/contexts/identity-access/token-service/ports"
	userservice "toolhub/contexts/identity-access/user-service"
)

type Modules struct {
	Tokens        tokenservice.Module
	Authorization authorization.Module
	Orders        orderservice.Module
	Catalog       catalogservice.Module
	Users         userservice.Module
	Reviews       reviewservice.Module
	Blogs         blogservice.Module
}

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	modules Modules
}

func New(modules Modules, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		modules: modules,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, used by httptest in server tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /auth/login", s.handleLogin)

	s.mux.HandleFunc("GET /orders", s.handleListAllOrders)
	s.mux.HandleFunc("GET /orders/{email}", s.handleListOrdersByEmail)
	s.mux.HandleFunc("GET /orders/{email}/{is_paid}", s.handleListOrdersByEmailAndPaid)
	s.mux.HandleFunc("POST /orders", s.handleCreateOrder)
	s.mux.HandleFunc("PUT /orders/{id}", s.handleUpsertOrder)
	s.mux.HandleFunc("POST /orders/{id}/pay", s.handlePayOrder)
	s.mux.HandleFunc("DELETE /orders/{id}", s.handleDeleteOrder)

	s.mux.HandleFunc("GET /tools", s.handleListTools)
	s.mux.HandleFunc("GET /tools/{id}", s.handleGetTool)
	s.mux.HandleFunc("POST /tools", s.handleCreateTool)
	s.mux.HandleFunc("DELETE /tools/{id}", s.handleDeleteTool)

	s.mux.HandleFunc("GET /users", s.handleListUsers)
	s.mux.HandleFunc("GET /users/{email}", s.handleGetUser)
	s.mux.HandleFunc("PUT /users/{email}", s.handleUpsertUser)

	s.mux.HandleFunc("GET /reviews", s.handleListReviews)
	s.mux.HandleFunc("POST /reviews", s.handleAddReview)

	s.mux.HandleFunc("GET /blogs", s.handleListBlogPosts)
	s.mux.HandleFunc("GET /blogs/{id}", s.handleGetBlogPost)
	s.mux.HandleFunc("POST /blogs", s.handleCreateBlogPost)

	s.mux.HandleFunc("GET /roles/{email}", s.handleListRoles)
	s.mux.HandleFunc("POST /roles/{email}/grant", s.handleGrantRole)
	s.mux.HandleFunc("POST /roles/{email}/revoke", s.handleRevokeRole)
}

// authenticate verifies the Authorization header. A missing credential is 401,
// a present-but-invalid one is 403.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (tokenports.Claims, bool) {
	claims, err := s.modules.Tokens.Service.Verify(r.Header.Get("Authorization"))
	switch {
	case err == nil:
		return claims, true
	case errors.Is(err, tokenerrors.ErrMissingCredential):
		writeError(w, http.StatusUnauthorized, "missing_credential", "Authorization header is required")
	default:
		writeError(w, http.StatusForbidden, "invalid_credential", "credential is invalid or expired")
	}
	return tokenports.Claims{}, false
}

// authorizeOwner enforces that the declared email matches the verified claim.
func (s *Server) authorizeOwner(w http.ResponseWriter, claims tokenports.Claims, declaredEmail string) bool {
	if err := s.modules.Tokens.Service.Authorize(claims, strings.TrimSpace(declaredEmail)); err != nil {
		writeError(w, http.StatusForbidden, "ownership_mismatch", "credential does not cover the requested resource")
		return false
	}
	return true
}

func (s *Server) requirePermission(w http.ResponseWriter, r *http.Request, claims tokenports.Claims, permission string) bool {
	allowed, err := s.modules.Authorization.Service.CheckPermission(r.Context(), claims.Email, permission)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return false
	}
	if !allowed {
		writeError(w, http.StatusForbidden, "forbidden", "caller lacks the required role")
		return false
	}
	return true
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
