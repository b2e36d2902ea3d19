package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/carhub/auth/authctx"
	"github.com/skillsenselab/carhub/auth/token"
	"github.com/skillsenselab/carhub/logger"
	"github.com/skillsenselab/carhub/observability"
)

// RoleResolver resolves the current roles for a token subject. It returns
// false when the subject no longer exists, in which case the token does not
// authenticate anyone.
type RoleResolver func(ctx context.Context, username string) ([]string, bool)

// Authenticate returns a Gin middleware that verifies a Bearer token, if one
// is present, and attaches the resulting principal to the request context.
//
// It never rejects a request: a missing, malformed, tampered, or expired
// token just means no principal is attached. Enforcement is Authorize's job,
// which keeps rejection bodies uniform regardless of why verification failed.
// The failure kind is still recorded in logs and metrics for diagnostics.
func Authenticate(tokens *token.Service, resolve RoleResolver, metrics *observability.AuthMetrics) gin.HandlerFunc {
	log := logger.WithComponent("auth")

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := tokens.Verify(raw, time.Now())
		if err != nil {
			kind := token.Kind(err)
			metrics.RecordTokenRejected(c.Request.Context(), kind)
			log.Debug("Token rejected", logger.Fields(
				logger.FieldReason, kind,
				logger.FieldPath, c.Request.URL.Path,
			))
			c.Next()
			return
		}

		roles, found := resolve(c.Request.Context(), claims.Subject)
		if !found {
			log.Debug("Token subject unknown", logger.Fields(
				logger.FieldUsername, claims.Subject,
			))
			c.Next()
			return
		}

		principal := &authctx.Principal{Username: claims.Subject, Roles: roles}
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), principal))
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme must be exactly "Bearer"; any other spelling means no credential
// was presented. Surrounding whitespace on the token is not tolerated beyond
// the single separating space.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
