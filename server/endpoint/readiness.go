package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Readiness returns a handler for readiness probes. It runs the dependency
// checks to determine whether the service can accept traffic.
func Readiness(serviceName string, checks map[string]CheckFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ready"
		httpStatus := http.StatusOK

		for _, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				status = "not_ready"
				httpStatus = http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":    status,
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
