// Package memory provides an in-memory fleet store for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/skillsenselab/carhub/fleet"
)

// Store is a thread-safe in-memory fleet.Store.
type Store struct {
	mu        sync.RWMutex
	cars      map[int64]fleet.Car
	owners    map[int64]fleet.Owner
	nextCarID int64
	nextOwnID int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		cars:      make(map[int64]fleet.Car),
		owners:    make(map[int64]fleet.Owner),
		nextCarID: 1,
		nextOwnID: 1,
	}
}

func (s *Store) ListCars(ctx context.Context, page, pageSize int) ([]fleet.Car, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]fleet.Car, 0, len(s.cars))
	for _, c := range s.cars {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return pageOf(all, page, pageSize), len(all), nil
}

func (s *Store) GetCar(ctx context.Context, id int64) (*fleet.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cars[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &c, nil
}

func (s *Store) CreateCar(ctx context.Context, car *fleet.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	car.ID = s.nextCarID
	s.nextCarID++
	s.cars[car.ID] = *car
	return nil
}

func (s *Store) DeleteCar(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[id]; !ok {
		return fleet.ErrNotFound
	}
	delete(s.cars, id)
	return nil
}

func (s *Store) ListOwners(ctx context.Context, page, pageSize int) ([]fleet.Owner, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]fleet.Owner, 0, len(s.owners))
	for _, o := range s.owners {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return pageOf(all, page, pageSize), len(all), nil
}

func (s *Store) GetOwner(ctx context.Context, id int64) (*fleet.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.owners[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &o, nil
}

func (s *Store) CreateOwner(ctx context.Context, owner *fleet.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner.ID = s.nextOwnID
	s.nextOwnID++
	s.owners[owner.ID] = *owner
	return nil
}

func (s *Store) DeleteOwner(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[id]; !ok {
		return fleet.ErrNotFound
	}
	delete(s.owners, id)
	return nil
}

// pageOf slices a sorted collection into a 1-based page.
func pageOf[T any](all []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []T{}
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
