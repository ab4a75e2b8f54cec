package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts with 403 unless the resolved identity carries the
// given role. Must run after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
			return
		}
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This operation requires the '" + role + "' role",
			})
			return
		}
		c.Next()
	}
}
