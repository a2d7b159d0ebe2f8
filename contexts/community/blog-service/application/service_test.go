package application

import (
	"context"
	"errors"
	"testing"

	"toolhub/contexts/community/blog-service/adapters/memory"
	domainerrors "toolhub/contexts/community/blog-service/domain/errors"
)

func newService() Service {
	store := memory.NewStore()
	return Service{Repo: store, IDGen: store, Clock: store}
}

func TestCreateAssignsIDAndPublishTime(t *testing.T) {
	service := newService()

	post, err := service.Create(context.Background(), CreatePostInput{
		Title:   "Choosing the right cordless drill",
		Author:  "editorial",
		Content: "Long-form body.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.PostID == "" {
		t.Fatal("expected generated post id")
	}
	if post.PublishedAt.IsZero() {
		t.Fatal("expected publish timestamp")
	}
}

func TestCreateRejectsMissingTitleOrContent(t *testing.T) {
	service := newService()

	cases := []CreatePostInput{
		{Content: "body without a title"},
		{Title: "title without a body"},
	}
	for _, input := range cases {
		if _, err := service.Create(context.Background(), input); !errors.Is(err, domainerrors.ErrInvalidRequest) {
			t.Fatalf("input %+v: expected ErrInvalidRequest, got %v", input, err)
		}
	}
}

func TestGetReturnsStoredPost(t *testing.T) {
	service := newService()

	created, err := service.Create(context.Background(), CreatePostInput{
		Title:   "Workshop safety basics",
		Content: "Wear the glasses.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := service.Get(context.Background(), created.PostID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Workshop safety basics" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestGetAbsentPostFails(t *testing.T) {
	service := newService()

	_, err := service.Get(context.Background(), "post_404")
	if !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListReturnsAllPosts(t *testing.T) {
	service := newService()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := service.Create(context.Background(), CreatePostInput{
			Title:   title,
			Content: "body",
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(items))
	}
}
