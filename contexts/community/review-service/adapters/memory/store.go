package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"toolhub/contexts/community/review-service/ports"
)

type Store struct {
	mu          sync.RWMutex
	reviewsByID map[string]ports.Review
	sequence    uint64
}

func NewStore() *Store {
	return &Store{
		reviewsByID: make(map[string]ports.Review),
	}
}

func (s *Store) Add(ctx context.Context, review ports.Review, now time.Time) (ports.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ReviewID == "" {
		review.ReviewID = s.nextID()
	}
	review.CreatedAt = now.UTC()
	s.reviewsByID[review.ReviewID] = review
	return review, nil
}

func (s *Store) ListAll(ctx context.Context) ([]ports.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Review, 0, len(s.reviewsByID))
	for _, review := range s.reviewsByID {
		items = append(items, review)
	}
	sort.Slice(items, func(i int, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ReviewID < items[j].ReviewID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	return s.nextID(), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) nextID() string {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("rev_%d", n)
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
