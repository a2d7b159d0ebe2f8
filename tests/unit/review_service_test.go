package unit

import (
	"context"
	"errors"
	"testing"

	reviewservice "toolhub/contexts/community/review-service"
	domainerrors "toolhub/contexts/community/review-service/domain/errors"
	httptransport "toolhub/contexts/community/review-service/transport/http"
)

func TestReviewAddAndList(t *testing.T) {
	module := reviewservice.NewInMemoryModule(nil)
	ctx := context.Background()

	added, err := module.Handler.AddReviewHandler(ctx, "alice@example.com", httptransport.AddReviewRequest{
		UserName: "Alice",
		Rating:   5,
		Comment:  "sturdy and well balanced",
	})
	if err != nil {
		t.Fatalf("add review failed: %v", err)
	}
	if added.Data.UserEmail != "alice@example.com" {
		t.Fatalf("expected author from credential, got %q", added.Data.UserEmail)
	}

	list, err := module.Handler.ListReviewsHandler(ctx)
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if len(list.Data) != 1 || list.Data[0].Rating != 5 {
		t.Fatalf("unexpected listing: %+v", list.Data)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	module := reviewservice.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, rating := range []int{0, 6} {
		_, err := module.Handler.AddReviewHandler(ctx, "alice@example.com", httptransport.AddReviewRequest{
			Rating: rating,
		})
		if !errors.Is(err, domainerrors.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}
