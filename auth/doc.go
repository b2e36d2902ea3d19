// Package auth implements stateless credential authentication.
//
// Subpackages provide the building blocks:
//
//   - auth/token    — signed bearer token issue/verify (the token codec)
//   - auth/password — salted password hashing (bcrypt, argon2id)
//   - auth/authctx  — request-scoped principal propagation
//
// The package itself provides the Authenticator, which checks a
// username/password pair against the credential store with enumeration
// hardening, and the HTTP handlers for /auth/login and /auth/register.
//
// The flow for a login is:
//
//	credentials → Authenticator → token.Service.Issue → {token, tokenType}
//
// Subsequent requests present the token in an "Authorization: Bearer"
// header; the server/middleware package verifies it and attaches a
// principal, and the authz table decides whether one is required.
package auth
