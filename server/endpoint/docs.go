package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/carhub/authz"
)

// Docs returns a handler that documents the service's routes and their
// access levels, derived from the same route policy the auth gate enforces.
func Docs(serviceName string, rules []authz.Rule) gin.HandlerFunc {
	type routeDoc struct {
		Method string `json:"method"`
		Path   string `json:"path"`
		Access string `json:"access"`
	}

	docs := make([]routeDoc, 0, len(rules))
	for _, r := range rules {
		access := "authenticated"
		if r.Access == authz.Public {
			access = "public"
		}
		docs = append(docs, routeDoc{Method: r.Method, Path: r.Pattern, Access: access})
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": serviceName,
			"routes":  docs,
		})
	}
}
