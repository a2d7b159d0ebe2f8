package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"toolhub/contexts/community/review-service/application"
	"toolhub/contexts/community/review-service/ports"
	httptransport "toolhub/contexts/community/review-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AddReviewHandler(ctx context.Context, authorEmail string, req httptransport.AddReviewRequest) (httptransport.AddReviewResponse, error) {
	review, err := h.Service.Add(ctx, application.AddReviewInput{
		UserEmail: authorEmail,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return httptransport.AddReviewResponse{}, err
	}
	return httptransport.AddReviewResponse{
		Status: "success",
		Data:   toDTO(review),
	}, nil
}

func (h Handler) ListReviewsHandler(ctx context.Context) (httptransport.ReviewListResponse, error) {
	items, err := h.Service.ListAll(ctx)
	if err != nil {
		return httptransport.ReviewListResponse{}, err
	}
	resp := httptransport.ReviewListResponse{
		Status: "success",
		Data:   make([]httptransport.ReviewDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, toDTO(item))
	}
	return resp, nil
}

func toDTO(review ports.Review) httptransport.ReviewDTO {
	return httptransport.ReviewDTO{
		ReviewID:  review.ReviewID,
		UserEmail: review.UserEmail,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.UTC().Format(time.RFC3339),
	}
}
