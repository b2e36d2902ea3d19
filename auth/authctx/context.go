// Package authctx propagates the authenticated principal through the
// request context.
//
// A Principal is request-scoped: the authentication middleware constructs it
// fresh from a verified token, handlers read it, and it dies with the
// request. It is never persisted.
package authctx

import "context"

// Principal is the authenticated caller of a request: the verified token
// subject and the role set resolved for it.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal holds the given role.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var principalKey = contextKey{}

// Set stores the principal in the context.
func Set(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// Get retrieves the principal from the context. The second return value is
// false when the request is unauthenticated.
func Get(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok && p != nil
}

// MustGet retrieves the principal or panics. Use only in handlers behind
// routes the authorization gate classifies as authenticated.
func MustGet(ctx context.Context) *Principal {
	p, ok := Get(ctx)
	if !ok {
		panic("authctx: no principal in context")
	}
	return p
}
