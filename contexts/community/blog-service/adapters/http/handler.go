package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"toolhub/contexts/community/blog-service/application"
	"toolhub/contexts/community/blog-service/ports"
	httptransport "toolhub/contexts/community/blog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreatePostHandler(ctx context.Context, req httptransport.CreatePostRequest) (httptransport.CreatePostResponse, error) {
	post, err := h.Service.Create(ctx, application.CreatePostInput{
		Title:    req.Title,
		Author:   req.Author,
		Summary:  req.Summary,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return httptransport.CreatePostResponse{}, err
	}
	return httptransport.CreatePostResponse{
		Status: "success",
		Data:   toDTO(post, true),
	}, nil
}

func (h Handler) GetPostHandler(ctx context.Context, postID string) (httptransport.GetPostResponse, error) {
	post, err := h.Service.Get(ctx, strings.TrimSpace(postID))
	if err != nil {
		return httptransport.GetPostResponse{}, err
	}
	return httptransport.GetPostResponse{
		Status: "success",
		Data:   toDTO(post, true),
	}, nil
}

// ListPostsHandler returns summaries only; Content stays behind Get.
func (h Handler) ListPostsHandler(ctx context.Context) (httptransport.PostListResponse, error) {
	items, err := h.Service.ListAll(ctx)
	if err != nil {
		return httptransport.PostListResponse{}, err
	}
	resp := httptransport.PostListResponse{
		Status: "success",
		Data:   make([]httptransport.PostDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, toDTO(item, false))
	}
	return resp, nil
}

func toDTO(post ports.Post, includeContent bool) httptransport.PostDTO {
	dto := httptransport.PostDTO{
		PostID:      post.PostID,
		Title:       post.Title,
		Author:      post.Author,
		Summary:     post.Summary,
		ImageURL:    post.ImageURL,
		PublishedAt: post.PublishedAt.UTC().Format(time.RFC3339),
	}
	if includeContent {
		dto.Content = post.Content
	}
	return dto
}
