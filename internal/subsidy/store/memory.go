package store

import (
	"context"
	"sync"

	"benefitd/internal/subsidy/models"
	"benefitd/pkg/platform/sentinel"
)

// InMemoryStore holds the parameter snapshot in memory.
type InMemoryStore struct {
	mu     sync.RWMutex
	params *models.Parameters
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Load(_ context.Context) (models.Parameters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.params == nil {
		return models.Parameters{}, sentinel.ErrNotFound
	}
	return *s.params, nil
}

func (s *InMemoryStore) Save(_ context.Context, p models.Parameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = &p
	return nil
}

func (s *InMemoryStore) Seed(_ context.Context, p models.Parameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.params == nil {
		s.params = &p
	}
	return nil
}
