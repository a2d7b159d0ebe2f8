package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	blogdomainerrors "toolhub/contexts/community/blog-service/domain/errors"
	bloghttp "toolhub/contexts/community/blog-service/transport/http"
	reviewdomainerrors "toolhub/contexts/community/review-service/domain/errors"
	reviewhttp "toolhub/contexts/community/review-service/transport/http"
	authzports "toolhub/contexts/identity-access/authorization-service/ports"
)

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Reviews.Handler.ListReviewsHandler(r.Context())
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req reviewhttp.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReviewError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Reviews.Handler.AddReviewHandler(r.Context(), claims.Email, req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBlogPosts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Blogs.Handler.ListPostsHandler(r.Context())
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Blogs.Handler.GetPostHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateBlogPost(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.requirePermission(w, r, claims, authzports.PermissionBlogsManage) {
		return
	}

	var req bloghttp.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBlogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Blogs.Handler.CreatePostHandler(r.Context(), req)
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeReviewDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviewdomainerrors.ErrInvalidRequest),
		errors.Is(err, reviewdomainerrors.ErrInvalidRating):
		writeReviewError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeReviewError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeReviewError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reviewhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeBlogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blogdomainerrors.ErrInvalidRequest):
		writeBlogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, blogdomainerrors.ErrPostNotFound):
		writeBlogError(w, http.StatusNotFound, "post_not_found", err.Error())
	default:
		writeBlogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeBlogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, bloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
