package security

import (
	"net/http"
	"strings"

	"logistica/pkg/roles"

	"github.com/gin-gonic/gin"
)

// JWTMiddleware validates the bearer token and stores its claims in the
// context. It lets every request through when no secret is configured.
func (t *Tokens) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		claims, err := t.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims["userID"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// Authorize ensures the caller's profile ranks at least requiredRole. It is a
// no-op when no secret is configured.
func (t *Tokens) Authorize(requiredRole roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.Enabled() {
			c.Next()
			return
		}

		role, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			return
		}
		userRole, ok := role.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid role format"})
			return
		}

		if !roles.Parse(userRole).HasPermission(requiredRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			return
		}

		c.Next()
	}
}
