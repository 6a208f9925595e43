package aircraft

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"adcheck/pkg/platform/sentinel"
)

// InMemoryStore keeps fleets in memory for tests and dev.
type InMemoryStore struct {
	mu     sync.RWMutex
	fleets map[string]Fleet
}

// NewInMemoryStore constructs an empty in-memory fleet store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{fleets: make(map[string]Fleet)}
}

func (s *InMemoryStore) Save(_ context.Context, fleet Fleet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fleets[fleet.Name] = fleet
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, name string) (*Fleet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if fleet, ok := s.fleets[name]; ok {
		return &fleet, nil
	}
	return nil, fmt.Errorf("fleet %q: %w", name, sentinel.ErrNotFound)
}

func (s *InMemoryStore) List(_ context.Context) ([]Fleet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fleets := make([]Fleet, 0, len(s.fleets))
	for _, fleet := range s.fleets {
		fleets = append(fleets, fleet)
	}
	sort.Slice(fleets, func(i, j int) bool { return fleets[i].Name < fleets[j].Name })
	return fleets, nil
}

func (s *InMemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fleets[name]; !ok {
		return fmt.Errorf("fleet %q: %w", name, sentinel.ErrNotFound)
	}
	delete(s.fleets, name)
	return nil
}
