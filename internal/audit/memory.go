package audit

import (
	"context"
	"sync"
)

// InMemoryPublisher collects events for tests and dev.
type InMemoryPublisher struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryPublisher() *InMemoryPublisher {
	return &InMemoryPublisher{}
}

func (p *InMemoryPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *InMemoryPublisher) Close() {}

// Events returns a copy of everything published so far.
func (p *InMemoryPublisher) Events() []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Event{}, p.events...)
}

func (p *InMemoryPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
