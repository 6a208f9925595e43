package directive

import (
	"context"
	"fmt"
	"sync"

	"adcheck/pkg/platform/sentinel"
)

// InMemoryStore keeps directive records in memory for tests and dev. It
// tracks insertion order so List stays deterministic.
type InMemoryStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]Record
}

// NewInMemoryStore constructs an empty in-memory directive store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]Record)}
}

func (s *InMemoryStore) Save(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.Label]; !exists {
		s.order = append(s.order, record.Label)
	}
	s.records[record.Label] = record
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, label string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if record, ok := s.records[label]; ok {
		return &record, nil
	}
	return nil, fmt.Errorf("directive %q: %w", label, sentinel.ErrNotFound)
}

func (s *InMemoryStore) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]Record, 0, len(s.order))
	for _, label := range s.order {
		records = append(records, s.records[label])
	}
	return records, nil
}

func (s *InMemoryStore) Delete(_ context.Context, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[label]; !ok {
		return fmt.Errorf("directive %q: %w", label, sentinel.ErrNotFound)
	}
	delete(s.records, label)
	for i, l := range s.order {
		if l == label {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
