package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey holds the verified token email in the gin context.
const ContextEmailKey = "email"

// VerifyJWT reads the token from the second word of the Authorization header
// ("Bearer <token>"). A missing header or token is rejected with 401, an
// invalid or expired token with 403.
func VerifyJWT(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := parts[1]

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// RequesterEmail returns the email set by VerifyJWT.
func RequesterEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
