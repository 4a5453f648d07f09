package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitpulsehq/gym-manager/internal/domain/role"
)

// RequireRole rejects the request before any side effect unless the
// principal holds one of the given roles. Superusers always pass.
func RequireRole(kinds ...role.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if su, ok := c.Get(ContextIsSuperuser); ok && su == true {
			c.Next()
			return
		}

		current, _ := c.Get(ContextUserRole)
		currentRole, _ := current.(string)

		for _, k := range kinds {
			if currentRole == string(k) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "You do not have permission to access this page.",
		})
	}
}
