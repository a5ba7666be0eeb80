package middleware

import (
	"net/http"

	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextAdminID  = "adminId"
	ContextUsername = "username"
)

// AuthRequired gates every back-office view behind the session cookie.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
