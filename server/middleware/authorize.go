package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/carhub/auth/authctx"
	"github.com/skillsenselab/carhub/authz"
	apperrors "github.com/skillsenselab/carhub/errors"
	"github.com/skillsenselab/carhub/logger"
)

// Authorize returns a Gin middleware that gates requests on the route
// policy. Public routes pass through; everything else requires a principal
// attached by Authenticate. Unknown routes are protected, so forgetting to
// list a new route fails closed.
//
// The rejection body is identical for every failure mode: the client learns
// only that authentication is required, never whether a token was present or
// why it failed.
func Authorize(classifier *authz.Classifier) gin.HandlerFunc {
	log := logger.WithComponent("authz")

	return func(c *gin.Context) {
		if classifier.Classify(c.Request.Method, c.Request.URL.Path) == authz.Public {
			c.Next()
			return
		}

		if _, ok := authctx.Get(c.Request.Context()); !ok {
			rejection := apperrors.Unauthorized(c.Request.URL.Path)
			log.Debug("Request rejected", logger.Fields(
				logger.FieldMethod, c.Request.Method,
				logger.FieldPath, c.Request.URL.Path,
			))
			c.AbortWithStatusJSON(rejection.HTTPStatus, rejection.Body())
			return
		}

		c.Next()
	}
}
