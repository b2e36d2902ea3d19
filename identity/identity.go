// Package identity defines the credential store contract and the Identity
// record it holds.
package identity

import (
	"context"
	"errors"
	"strings"
)

// DefaultRole is assigned to identities registered without explicit roles.
const DefaultRole = "ROLE_USER"

// MaxUsernameLength bounds usernames at the storage boundary.
const MaxUsernameLength = 100

// Identity is a stored credential record. The password is kept only as an
// opaque hash; roles are stored comma-joined and parsed into a set at use
// time.
type Identity struct {
	ID           int64
	Username     string
	PasswordHash string
	Roles        string
}

// RoleSet parses the stored role string into a deduplicated slice,
// preserving first-seen order. Blank entries are dropped.
func (i *Identity) RoleSet() []string {
	parts := strings.Split(i.Roles, ",")
	seen := make(map[string]bool, len(parts))
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		r := strings.TrimSpace(p)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		roles = append(roles, r)
	}
	return roles
}

// JoinRoles serializes a role set back to the stored comma-joined form.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}

// Store-level sentinel errors.
var (
	// ErrNotFound is returned when no identity exists for a username.
	ErrNotFound = errors.New("identity: not found")
	// ErrDuplicate is returned when creating an identity whose username is
	// already taken. Implementations must enforce uniqueness themselves so
	// concurrent registrations surface as ErrDuplicate, never as a silent
	// overwrite or duplicate record.
	ErrDuplicate = errors.New("identity: username already exists")
)

// Store is the credential store. It is shared across requests and must be
// safe for concurrent use; uniqueness of usernames is the store's own
// responsibility, not the caller's.
type Store interface {
	// FindByUsername returns the identity for a username, or ErrNotFound.
	// Lookup is case-sensitive.
	FindByUsername(ctx context.Context, username string) (*Identity, error)

	// Create persists a new identity, assigning its ID. Returns
	// ErrDuplicate if the username is already taken.
	Create(ctx context.Context, id *Identity) error
}
