// Package token issues and verifies the signed bearer tokens that carry
// authentication between requests.
//
// Tokens are self-contained HS256 JWTs encoding subject, issued-at and
// expiry. The signature covers all claims, so tampering with any of them
// invalidates the token. Tokens are never persisted server-side: a token is
// valid exactly when its signature verifies against the current secret and
// its expiry has not passed, and no token can be revoked before it expires.
package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Verification failures. All three are handled identically by callers
// (reject as unauthenticated) but stay distinguishable for diagnostics.
var (
	// ErrMalformed means the token string could not be parsed.
	ErrMalformed = errors.New("token: malformed")
	// ErrBadSignature means the signature did not verify: the token was
	// tampered with or signed with a different key.
	ErrBadSignature = errors.New("token: bad signature")
	// ErrExpired means the token's expiry has passed.
	ErrExpired = errors.New("token: expired")
)

// Claims are the facts encoded inside a token: subject, issued-at and
// expiry. Roles are deliberately not embedded; callers re-resolve them from
// the credential store per request.
type Claims struct {
	gojwt.RegisteredClaims
}

// Service issues and verifies signed tokens. The signing key is fixed at
// construction and read-only thereafter; constructing a Service with a new
// key invalidates every previously issued token.
type Service struct {
	cfg Config
}

// NewService creates a token Service.
func NewService(cfg *Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return &Service{cfg: *cfg}, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.cfg.TTL
}

// Issue creates a signed token for a subject with issuedAt = now and
// expiresAt = now + TTL.
func (s *Service) Issue(subject string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses a token string and checks its signature and time bounds
// against now. It never panics on arbitrary input; every failure is one of
// ErrMalformed, ErrBadSignature or ErrExpired.
func (s *Service) Verify(tokenString string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, classify(err)
	}
	if !parsed.Valid {
		return nil, ErrMalformed
	}
	// The library treats exp as inclusive; the contract here is that a
	// token is valid only strictly before its expiry.
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return nil, ErrExpired
	}
	if claims.IssuedAt != nil && now.Before(claims.IssuedAt.Time) {
		return nil, ErrMalformed
	}
	return claims, nil
}

// Kind names a verification failure for logs and metrics. It returns
// "malformed", "bad_signature", "expired", or "" for other errors.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, ErrExpired):
		return "expired"
	default:
		return ""
	}
}

// keyFunc pins the expected signing method before releasing the key.
func (s *Service) keyFunc(t *gojwt.Token) (interface{}, error) {
	if t.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}

// classify maps golang-jwt errors onto the package's sentinel errors.
// Signature failures are checked before expiry so a tampered token never
// reports as merely expired.
func classify(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	case errors.Is(err, gojwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, gojwt.ErrTokenUsedBeforeIssued), errors.Is(err, gojwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
