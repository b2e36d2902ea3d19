package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/carhub/errors"
	"github.com/skillsenselab/carhub/logger"
)

// Recovery returns a Gin middleware that recovers from panics and logs the
// stack. The client receives the generic internal error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered", map[string]interface{}{
					"error":     fmt.Sprintf("%v", err),
					"stack":     string(debug.Stack()),
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
				})
				internal := apperrors.Internal(fmt.Errorf("panic: %v", err))
				c.AbortWithStatusJSON(internal.HTTPStatus, internal.Body())
			}
		}()
		c.Next()
	}
}
