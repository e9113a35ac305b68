package store

import (
	"context"
	"sync"

	"benefitd/internal/recipient/models"
	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
)

// InMemoryStore keeps recipients and criteria in memory. Safe for concurrent use.
type InMemoryStore struct {
	mu         sync.RWMutex
	recipients map[domain.Principal]models.Recipient
	criteria   *models.Criteria
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{recipients: make(map[domain.Principal]models.Recipient)}
}

func (s *InMemoryStore) Find(_ context.Context, identity domain.Principal) (*models.Recipient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recipients[identity]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &r, nil
}

func (s *InMemoryStore) Create(_ context.Context, r *models.Recipient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipients[r.Identity]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.recipients[r.Identity] = *r
	return nil
}

func (s *InMemoryStore) Update(_ context.Context, r *models.Recipient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipients[r.Identity]; !ok {
		return sentinel.ErrNotFound
	}
	s.recipients[r.Identity] = *r
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, identity domain.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipients[identity]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.recipients, identity)
	return nil
}

func (s *InMemoryStore) LoadCriteria(_ context.Context) (models.Criteria, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.criteria == nil {
		return models.Criteria{}, sentinel.ErrNotFound
	}
	return *s.criteria, nil
}

func (s *InMemoryStore) SaveCriteria(_ context.Context, c models.Criteria) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = &c
	return nil
}

func (s *InMemoryStore) SeedCriteria(_ context.Context, c models.Criteria) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.criteria == nil {
		s.criteria = &c
	}
	return nil
}
