// Package server provides the HTTP server for the car registry service,
// using Gin with HTTP/2 and h2c support.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: request ID generation and propagation
//   - CORS: cross-origin resource sharing
//   - Logging: request/response logging with duration tracking
//   - BodySize: request body size limits
//   - RateLimit: sliding-window rate limiting (applied to login)
//   - Authenticate: bearer token verification, attach-only
//   - Authorize: route access gate driven by the route policy
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: health check aggregation
//   - /alive: liveness probe
//   - /ready: readiness probe
//   - /info: service and build information
//   - /docs: route documentation
package server
