package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	domainerrors "toolhub/contexts/commerce/catalog-service/domain/errors"
	"toolhub/contexts/commerce/catalog-service/ports"
)

type Store struct {
	mu        sync.RWMutex
	toolsByID map[string]ports.Tool
	sequence  uint64
}

func NewStore() *Store {
	return &Store{
		toolsByID: make(map[string]ports.Tool),
	}
}

func (s *Store) Create(ctx context.Context, tool ports.Tool, now time.Time) (ports.Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tool.ToolID == "" {
		tool.ToolID = s.nextID()
	}
	tool.CreatedAt = now.UTC()
	tool.UpdatedAt = now.UTC()
	s.toolsByID[tool.ToolID] = tool
	return tool, nil
}

func (s *Store) List(ctx context.Context) ([]ports.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Tool, 0, len(s.toolsByID))
	for _, tool := range s.toolsByID {
		items = append(items, tool)
	}
	sort.Slice(items, func(i int, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ToolID < items[j].ToolID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Get(ctx context.Context, toolID string) (ports.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tool, ok := s.toolsByID[toolID]
	if !ok {
		return ports.Tool{}, domainerrors.ErrToolNotFound
	}
	return tool, nil
}

func (s *Store) Delete(ctx context.Context, toolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.toolsByID[toolID]; !ok {
		return domainerrors.ErrToolNotFound
	}
	delete(s.toolsByID, toolID)
	return nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	return s.nextID(), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) nextID() string {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("tool_%d", n)
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
