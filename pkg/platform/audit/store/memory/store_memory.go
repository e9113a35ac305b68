// Package memory keeps audit events in process, for tests and for
// deployments without a database.
package memory

import (
	"context"
	"sync"

	audit "benefitd/pkg/platform/audit"
)

// DefaultCapacity bounds the events kept by a store built without options.
const DefaultCapacity = 10000

// InMemoryStore retains the most recent events up to its capacity. Older
// events are discarded first.
type InMemoryStore struct {
	mu       sync.RWMutex
	capacity int
	events   []audit.Event
}

type Option func(*InMemoryStore)

// WithCapacity sets the retention bound. Values below one are ignored.
func WithCapacity(n int) Option {
	return func(s *InMemoryStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if over := len(s.events) - s.capacity; over > 0 {
		s.events = append(s.events[:0:0], s.events[over:]...)
	}
	return nil
}

// ListByModule returns the retained events of one module in append order.
func (s *InMemoryStore) ListByModule(_ context.Context, module string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []audit.Event
	for _, e := range s.events {
		if e.Module == module {
			out = append(out, e)
		}
	}
	return out, nil
}

// Len reports how many events are retained.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
