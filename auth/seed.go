package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillsenselab/carhub/auth/password"
	"github.com/skillsenselab/carhub/identity"
)

// SeedUser ensures a credential exists for the given username, creating it
// with the default role when absent. Intended for development bootstrap; a
// concurrent seed losing the insert race is treated as success.
func SeedUser(ctx context.Context, store identity.Store, hasher password.Hasher, username, plaintext string) error {
	if _, err := store.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, identity.ErrNotFound) {
		return fmt.Errorf("auth: seed lookup: %w", err)
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("auth: seed hash: %w", err)
	}
	err = store.Create(ctx, &identity.Identity{
		Username:     username,
		PasswordHash: hash,
		Roles:        identity.DefaultRole,
	})
	if err != nil && !errors.Is(err, identity.ErrDuplicate) {
		return fmt.Errorf("auth: seed create: %w", err)
	}
	return nil
}
