package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "toolhub/contexts/community/blog-service/domain/errors"
	"toolhub/contexts/community/blog-service/ports"
)

type Service struct {
	Repo   ports.Repository
	IDGen  ports.IDGenerator
	Clock  ports.Clock
	Logger *slog.Logger
}

type CreatePostInput struct {
	Title    string
	Author   string
	Summary  string
	Content  string
	ImageURL string
}

func (s Service) Create(ctx context.Context, input CreatePostInput) (ports.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return ports.Post{}, domainerrors.ErrInvalidRequest
	}
	if strings.TrimSpace(input.Content) == "" {
		return ports.Post{}, domainerrors.ErrInvalidRequest
	}

	postID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Post{}, err
	}

	now := s.now()
	post := ports.Post{
		PostID:      postID,
		Title:       strings.TrimSpace(input.Title),
		Author:      strings.TrimSpace(input.Author),
		Summary:     strings.TrimSpace(input.Summary),
		Content:     input.Content,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		PublishedAt: now,
	}
	return s.Repo.Create(ctx, post, now)
}

func (s Service) Get(ctx context.Context, postID string) (ports.Post, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return ports.Post{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.Get(ctx, postID)
}

func (s Service) ListAll(ctx context.Context) ([]ports.Post, error) {
	return s.Repo.ListAll(ctx)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
