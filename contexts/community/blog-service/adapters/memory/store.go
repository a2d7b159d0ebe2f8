package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	domainerrors "toolhub/contexts/community/blog-service/domain/errors"
	"toolhub/contexts/community/blog-service/ports"
)

type Store struct {
	mu        sync.RWMutex
	postsByID map[string]ports.Post
	sequence  uint64
}

func NewStore() *Store {
	return &Store{
		postsByID: make(map[string]ports.Post),
	}
}

func (s *Store) Create(ctx context.Context, post ports.Post, now time.Time) (ports.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.PostID == "" {
		post.PostID = s.nextID()
	}
	post.PublishedAt = now.UTC()
	s.postsByID[post.PostID] = post
	return post, nil
}

func (s *Store) Get(ctx context.Context, postID string) (ports.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.postsByID[postID]
	if !ok {
		return ports.Post{}, domainerrors.ErrPostNotFound
	}
	return post, nil
}

func (s *Store) ListAll(ctx context.Context) ([]ports.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Post, 0, len(s.postsByID))
	for _, post := range s.postsByID {
		items = append(items, post)
	}
	sort.Slice(items, func(i int, j int) bool {
		if items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].PostID < items[j].PostID
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
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
	return fmt.Sprintf("post_%d", n)
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
