package middleware

import (
	"net/http"
	"strings"

	"ayursutra/models"
	"ayursutra/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// JWTAuthMiddleware resolves the Bearer token to an identity and stores it
// in the request context. Downstream code consumes the resolved identity and
// never touches credentials.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.IdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, models.Identity{ID: id, Role: role})
		c.Next()
	}
}

// IdentityFrom returns the resolved identity stored by JWTAuthMiddleware.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}
