package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "toolhub/contexts/identity-access/user-service/domain/errors"
	"toolhub/contexts/identity-access/user-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) Upsert(ctx context.Context, user ports.User) (ports.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}

	stored, err := s.Repo.Upsert(ctx, user, s.now())
	if err != nil {
		return ports.User{}, err
	}

	if s.Logger != nil {
		s.Logger.Debug("user profile upserted",
			"event", "user_profile_upserted",
			"module", "identity-access/user-service",
			"layer", "application",
			"email", stored.Email,
		)
	}
	return stored, nil
}

func (s Service) Get(ctx context.Context, email string) (ports.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.Get(ctx, email)
}

func (s Service) ListAll(ctx context.Context) ([]ports.User, error) {
	return s.Repo.ListAll(ctx)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
