package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "toolhub/contexts/community/review-service/domain/errors"
	"toolhub/contexts/community/review-service/ports"
)

type Service struct {
	Repo   ports.Repository
	IDGen  ports.IDGenerator
	Clock  ports.Clock
	Logger *slog.Logger
}

type AddReviewInput struct {
	UserEmail string
	UserName  string
	Rating    int
	Comment   string
}

func (s Service) Add(ctx context.Context, input AddReviewInput) (ports.Review, error) {
	if strings.TrimSpace(input.UserEmail) == "" {
		return ports.Review{}, domainerrors.ErrInvalidRequest
	}
	if input.Rating < 1 || input.Rating > 5 {
		return ports.Review{}, domainerrors.ErrInvalidRating
	}

	reviewID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Review{}, err
	}

	now := s.now()
	review := ports.Review{
		ReviewID:  reviewID,
		UserEmail: strings.TrimSpace(input.UserEmail),
		UserName:  strings.TrimSpace(input.UserName),
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: now,
	}
	return s.Repo.Add(ctx, review, now)
}

func (s Service) ListAll(ctx context.Context) ([]ports.Review, error) {
	return s.Repo.ListAll(ctx)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
