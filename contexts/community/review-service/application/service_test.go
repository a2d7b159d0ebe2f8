package application

import (
	"context"
	"errors"
	"testing"

	"toolhub/contexts/community/review-service/adapters/memory"
	domainerrors "toolhub/contexts/community/review-service/domain/errors"
)

func newService() Service {
	store := memory.NewStore()
	return Service{Repo: store, IDGen: store, Clock: store}
}

func TestAddAssignsIDAndStampsAuthor(t *testing.T) {
	service := newService()

	review, err := service.Add(context.Background(), AddReviewInput{
		UserEmail: "alice@example.com",
		UserName:  "Alice",
		Rating:    4,
		Comment:   "solid drill",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if review.ReviewID == "" {
		t.Fatal("expected generated review id")
	}
	if review.UserEmail != "alice@example.com" {
		t.Fatalf("unexpected author: %q", review.UserEmail)
	}
	if review.CreatedAt.IsZero() {
		t.Fatal("expected created_at stamp")
	}
}

func TestAddRejectsOutOfRangeRating(t *testing.T) {
	service := newService()

	for _, rating := range []int{0, -1, 6, 42} {
		_, err := service.Add(context.Background(), AddReviewInput{
			UserEmail: "alice@example.com",
			Rating:    rating,
		})
		if !errors.Is(err, domainerrors.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestAddRejectsMissingAuthor(t *testing.T) {
	service := newService()

	_, err := service.Add(context.Background(), AddReviewInput{Rating: 3})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestListReturnsAllReviews(t *testing.T) {
	service := newService()

	for _, rating := range []int{1, 3, 5} {
		if _, err := service.Add(context.Background(), AddReviewInput{
			UserEmail: "alice@example.com",
			Rating:    rating,
		}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	items, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(items))
	}
}
