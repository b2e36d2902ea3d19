// Package endpoint provides the built-in operational HTTP endpoints:
// health, liveness, readiness, service info, and route documentation.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckFunc probes a single dependency. A nil error means the dependency is up.
type CheckFunc func(ctx context.Context) error

// Health returns a handler that reports service health including the status
// of each registered dependency check.
func Health(serviceName string, checks map[string]CheckFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		components := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				components[name] = "down"
				status = "unhealthy"
				httpStatus = http.StatusServiceUnavailable
			} else {
				components[name] = "up"
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}
