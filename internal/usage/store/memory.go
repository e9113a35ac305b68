package store

import (
	"context"
	"sync"

	"benefitd/internal/usage/models"
	"benefitd/pkg/platform/sentinel"
)

// InMemoryStore keeps usage records and thresholds in memory. Safe for
// concurrent use.
type InMemoryStore struct {
	mu         sync.RWMutex
	records    map[models.Key]models.Record
	thresholds *models.Thresholds
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[models.Key]models.Record)}
}

func (s *InMemoryStore) Find(_ context.Context, key models.Key) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[key]
	if !ok {
		return models.Record{}, sentinel.ErrNotFound
	}
	return r, nil
}

func (s *InMemoryStore) Create(_ context.Context, key models.Key, r models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.records[key] = r
	return nil
}

func (s *InMemoryStore) Update(_ context.Context, key models.Key, r models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return sentinel.ErrNotFound
	}
	s.records[key] = r
	return nil
}

func (s *InMemoryStore) LoadThresholds(_ context.Context) (models.Thresholds, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.thresholds == nil {
		return models.Thresholds{}, sentinel.ErrNotFound
	}
	return *s.thresholds, nil
}

func (s *InMemoryStore) SaveThresholds(_ context.Context, t models.Thresholds) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thresholds = &t
	return nil
}

// SeedThresholds stores t only when no thresholds exist yet.
func (s *InMemoryStore) SeedThresholds(_ context.Context, t models.Thresholds) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.thresholds == nil {
		s.thresholds = &t
	}
	return nil
}
