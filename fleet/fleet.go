// Package fleet holds the vehicle registry: cars and their owners. All of
// its routes sit behind the auth gate; it is the resource API the auth
// subsystem fronts.
package fleet

import (
	"context"
	"errors"
)

// Car is a registered vehicle.
type Car struct {
	ID      int64  `json:"id"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	OwnerID int64  `json:"ownerId,omitempty"`
}

// Owner is a car owner.
type Owner struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ErrNotFound is returned when a car or owner does not exist.
var ErrNotFound = errors.New("fleet: not found")

// Store is the persistence contract for the vehicle registry. List methods
// take a 1-based page and a page size and return the page plus the total
// item count.
type Store interface {
	ListCars(ctx context.Context, page, pageSize int) ([]Car, int, error)
	GetCar(ctx context.Context, id int64) (*Car, error)
	CreateCar(ctx context.Context, car *Car) error
	DeleteCar(ctx context.Context, id int64) error

	ListOwners(ctx context.Context, page, pageSize int) ([]Owner, int, error)
	GetOwner(ctx context.Context, id int64) (*Owner, error)
	CreateOwner(ctx context.Context, owner *Owner) error
	DeleteOwner(ctx context.Context, id int64) error
}
