// Package observability initializes the OpenTelemetry metric and trace
// providers and defines the service's instrument sets.
//
// The auth subsystem reports login outcomes and token rejection kinds here;
// these are the only place where the three token failure modes (malformed,
// bad signature, expired) are told apart, since HTTP responses deliberately
// stay uniform.
package observability
