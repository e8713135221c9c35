package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/security"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// AdminOnlyMiddleware guards back-office endpoints. It accepts the operator
// token from the admin_auth cookie or a Bearer Authorization header.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractAdminToken(c)
		if !security.IsAdminToken(token, config.JWTSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractAdminToken(c *gin.Context) string {
	if cookie, err := c.Cookie("admin_auth"); err == nil && cookie != "" {
		return cookie
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	// Websocket clients can't set headers, allow token query param there
	return c.Query("token")
}
