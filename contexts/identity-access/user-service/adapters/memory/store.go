package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainerrors "toolhub/contexts/identity-access/user-service/domain/errors"
	"toolhub/contexts/identity-access/user-service/ports"
)

type Store struct {
	mu           sync.RWMutex
	usersByEmail map[string]ports.User
}

func NewStore() *Store {
	return &Store{
		usersByEmail: make(map[string]ports.User),
	}
}

func (s *Store) Upsert(ctx context.Context, user ports.User, now time.Time) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now = now.UTC()
	existing, ok := s.usersByEmail[user.Email]
	if ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.usersByEmail[user.Email] = user
	return user, nil
}

func (s *Store) Get(ctx context.Context, email string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByEmail[email]
	if !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ListAll(ctx context.Context) ([]ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.User, 0, len(s.usersByEmail))
	for _, user := range s.usersByEmail {
		items = append(items, user)
	}
	sort.Slice(items, func(i int, j int) bool {
		return items[i].Email < items[j].Email
	})
	return items, nil
}

var _ ports.Repository = (*Store)(nil)
