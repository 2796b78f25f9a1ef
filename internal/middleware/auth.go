package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/auth"
	"github.com/smokequit/smokequit-api/internal/config"
	"github.com/smokequit/smokequit-api/internal/models"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
)

// Auth validates the Bearer token and stores the caller's identity on the
// context. The role claim is decoded into the Role enum here, once.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"errorCode": "SA40102", "message": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"errorCode": "SA40102", "message": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(parts[1], cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"errorCode": "SA40102", "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is outside the allow-list with
// the 403 envelope before any handler runs. Must be used after Auth.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleRaw, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"errorCode": "SA40102", "message": "Authentication required"})
			c.Abort()
			return
		}
		role := roleRaw.(models.Role)

		if !role.In(allowed...) {
			c.JSON(http.StatusForbidden, gin.H{"errorCode": "SP40301", "message": "Permission denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
