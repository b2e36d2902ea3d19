package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AuthMetrics holds the instruments for authentication diagnostics. Token
// rejection reasons are distinguishable here and in logs only; the HTTP
// responses stay uniform.
//
// A nil *AuthMetrics is valid and records nothing, so wiring metrics stays
// optional.
type AuthMetrics struct {
	loginTotal    metric.Int64Counter
	tokenRejected metric.Int64Counter
}

// NewAuthMetrics creates the auth instrument set on the given meter.
func NewAuthMetrics(meter metric.Meter) (*AuthMetrics, error) {
	loginTotal, err := meter.Int64Counter("auth.login.total",
		metric.WithDescription("Login attempts by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.login.total counter: %w", err)
	}

	tokenRejected, err := meter.Int64Counter("auth.token.rejected",
		metric.WithDescription("Bearer tokens rejected during verification, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.token.rejected counter: %w", err)
	}

	return &AuthMetrics{
		loginTotal:    loginTotal,
		tokenRejected: tokenRejected,
	}, nil
}

// RecordLogin records a login attempt outcome: granted, denied, or error.
func (m *AuthMetrics) RecordLogin(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.loginTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordTokenRejected records a token verification failure by kind
// (malformed, bad_signature, expired).
func (m *AuthMetrics) RecordTokenRejected(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.tokenRejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}
