package middleware

import (
	"net/http"
	"strings"

	"artisanhub/models"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// RequireRole validates the bearer token and admits only actors holding the
// given role. The resolved Actor is stored in the Gin context; downstream code
// never sees the raw token or role string again.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token missing"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if utils.IsTokenRevoked(c.Request.Context(), tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		id, role, err := utils.ExtractActorFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if !models.ValidRole(models.Role(role)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid role"})
			return
		}
		if models.Role(role) != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(actorContextKey, models.Actor{Role: models.Role(role), ID: id})
		c.Next()
	}
}

// GetActor returns the authenticated actor set by RequireRole.
func GetActor(c *gin.Context) (models.Actor, bool) {
	val, exists := c.Get(actorContextKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}
