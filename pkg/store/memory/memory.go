package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/adrianliechti/suggest/pkg/store"

	"github.com/google/uuid"
)

var _ store.Provider = &Store{}

type Store struct {
	mu     sync.RWMutex
	checks []store.StatusCheck
	ids    map[string]struct{}
}

func New() *Store {
	return &Store{
		ids: make(map[string]struct{}),
	}
}

func (s *Store) CreateStatusCheck(ctx context.Context, clientName string) (*store.StatusCheck, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, store.ErrInvalidInput
	}

	check := store.StatusCheck{
		ID: uuid.NewString(),

		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[check.ID]; ok {
		return nil, store.ErrConflict
	}

	s.ids[check.ID] = struct{}{}
	s.checks = append(s.checks, check)

	return &check, nil
}

func (s *Store) ListStatusChecks(ctx context.Context, options *store.ListOptions) ([]store.StatusCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := store.Limit(options)

	items := s.checks

	if len(items) > limit {
		items = items[:limit]
	}

	result := make([]store.StatusCheck, len(items))
	copy(result, items)

	return result, nil
}
