// Package memory provides an in-memory identity store for tests and
// single-process development runs.
package memory

import (
	"context"
	"sync"

	"github.com/skillsenselab/carhub/identity"
)

// Store is a thread-safe in-memory identity.Store. The check-then-insert in
// Create runs under a single lock, so concurrent registrations of the same
// username resolve to exactly one record and one ErrDuplicate.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]*identity.Identity
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		nextID: 1,
		byName: make(map[string]*identity.Identity),
	}
}

// FindByUsername implements identity.Store.
func (s *Store) FindByUsername(_ context.Context, username string) (*identity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[username]
	if !ok {
		return nil, identity.ErrNotFound
	}
	cp := *id
	return &cp, nil
}

// Create implements identity.Store.
func (s *Store) Create(_ context.Context, id *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byName[id.Username]; ok {
		return identity.ErrDuplicate
	}
	id.ID = s.nextID
	s.nextID++
	cp := *id
	s.byName[id.Username] = &cp
	return nil
}

// Count returns the number of stored identities.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}
