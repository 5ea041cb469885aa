package handlers

import (
	"net/http"
	"strings"
	"time"

	"artisanhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// tokenLifetime matches the expiry set at login; revocation entries never
// need to outlive the token itself.
const tokenLifetime = 7 * 24 * time.Hour

// Logout revokes the bearer token used on this request. It serves every role
// behind the role-specific logout routes.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := utils.RevokeToken(c.Request.Context(), token, tokenLifetime); err != nil {
		utils.GetLogger().Error("Failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
