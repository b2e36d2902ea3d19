package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillsenselab/carhub/auth/password"
	"github.com/skillsenselab/carhub/identity"
)

// ErrInvalidCredentials is the uniform authentication failure. It is
// returned both for an unknown username and for a wrong password, so callers
// cannot distinguish the two.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Authenticator verifies a username/password pair against the credential
// store. It holds no per-request state and is safe for concurrent use.
type Authenticator struct {
	store  identity.Store
	hasher password.Hasher

	// dummyHash is verified against when the username does not exist, so
	// the cost of a failed lookup matches the cost of a wrong password and
	// response latency does not leak account existence.
	dummyHash string
}

// NewAuthenticator creates an Authenticator. The dummy hash is derived once
// from random material at construction.
func NewAuthenticator(store identity.Store, hasher password.Hasher) (*Authenticator, error) {
	dummy, err := password.GenerateToken(16)
	if err != nil {
		return nil, fmt.Errorf("auth: generate dummy secret: %w", err)
	}
	dummyHash, err := hasher.Hash(dummy)
	if err != nil {
		return nil, fmt.Errorf("auth: hash dummy secret: %w", err)
	}
	return &Authenticator{store: store, hasher: hasher, dummyHash: dummyHash}, nil
}

// Authenticate verifies the credentials and returns the stored identity on
// success. Any failure, unknown user or wrong password alike, yields
// ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, username, plaintext string) (*identity.Identity, error) {
	id, err := a.store.FindByUsername(ctx, username)
	if errors.Is(err, identity.ErrNotFound) {
		a.hasher.Verify(plaintext, a.dummyHash)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("auth: lookup %q: %w", username, err)
	}
	if !a.hasher.Verify(plaintext, id.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return id, nil
}
