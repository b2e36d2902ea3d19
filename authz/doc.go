// Package authz decides which routes require an authenticated principal.
//
// It provides a declarative, ordered route-classification table: each Rule
// maps a (method, path pattern) pair to Public or Authenticated access. The
// first matching rule wins, and unmatched requests default to Authenticated,
// so the table fails closed.
//
// The package performs no role-based checks; finer per-role authorization is
// a downstream handler concern.
//
//	classifier := authz.NewClassifier(authz.DefaultRules()...)
//	access := classifier.Classify("GET", "/api/cars") // Authenticated
package authz
