package unit

import (
	"context"
	"errors"
	"testing"

	blogservice "toolhub/contexts/community/blog-service"
	domainerrors "toolhub/contexts/community/blog-service/domain/errors"
	httptransport "toolhub/contexts/community/blog-service/transport/http"
)

func TestBlogCreateGetAndList(t *testing.T) {
	module := blogservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreatePostHandler(ctx, httptransport.CreatePostRequest{
		Title:   "Picking a first router",
		Author:  "editorial",
		Summary: "Buying guide",
		Content: "Long-form buying guide body.",
	})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	got, err := module.Handler.GetPostHandler(ctx, created.Data.PostID)
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	if got.Data.Content == "" {
		t.Fatalf("expected full content on get")
	}

	list, err := module.Handler.ListPostsHandler(ctx)
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected 1 post, got %d", len(list.Data))
	}
	if list.Data[0].Content != "" {
		t.Fatalf("expected listing to omit content")
	}
}

func TestBlogGetAbsentPostFails(t *testing.T) {
	module := blogservice.NewInMemoryModule(nil)

	_, err := module.Handler.GetPostHandler(context.Background(), "post_404")
	if !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
