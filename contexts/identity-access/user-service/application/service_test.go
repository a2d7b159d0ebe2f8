package application

import (
	"context"
	"errors"
	"testing"

	"toolhub/contexts/identity-access/user-service/adapters/memory"
	domainerrors "toolhub/contexts/identity-access/user-service/domain/errors"
	"toolhub/contexts/identity-access/user-service/ports"
)

func TestUpsertCreatesThenUpdates(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	created, err := service.Upsert(context.Background(), ports.User{
		Email: "a@x.com",
		Name:  "Ada",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if created.Name != "Ada" {
		t.Fatalf("unexpected name %s", created.Name)
	}

	updated, err := service.Upsert(context.Background(), ports.User{
		Email:    "a@x.com",
		Name:     "Ada Lovelace",
		Location: "London",
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if updated.Name != "Ada Lovelace" || updated.Location != "London" {
		t.Fatalf("unexpected updated user %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at preserved on update")
	}
}

func TestUpsertRequiresEmail(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	if _, err := service.Upsert(context.Background(), ports.User{Name: "Ada"}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestGetMissingUser(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	if _, err := service.Get(context.Background(), "missing@x.com"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestListAllSortedByEmail(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		if _, err := service.Upsert(context.Background(), ports.User{Email: email}); err != nil {
			t.Fatalf("upsert %s failed: %v", email, err)
		}
	}

	items, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 || items[0].Email != "a@x.com" || items[2].Email != "c@x.com" {
		t.Fatalf("unexpected list order %+v", items)
	}
}
