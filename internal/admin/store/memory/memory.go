package memory

import (
	"context"
	"sync"

	"benefitd/internal/admin"
	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
)

// Store keeps admins in memory. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	admins map[admin.Scope]domain.Principal
}

func New() *Store {
	return &Store{admins: make(map[admin.Scope]domain.Principal)}
}

func (s *Store) Find(_ context.Context, scope admin.Scope) (domain.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.admins[scope]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return p, nil
}

func (s *Store) Save(_ context.Context, scope admin.Scope, p domain.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[scope] = p
	return nil
}

func (s *Store) Seed(_ context.Context, scope admin.Scope, p domain.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[scope]; !ok {
		s.admins[scope] = p
	}
	return nil
}
