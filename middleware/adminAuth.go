package middleware

import (
	"context"
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker decides whether an email belongs to an admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin must run after VerifyJWT. It looks up the requester and aborts
// with 403 unless their role is admin.
func RequireAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := RequesterEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			utils.JSONError(c, RequestLogger(c), http.StatusInternalServerError, "failed to verify role", err)
			return
		}
		if !isAdmin {
			RequestLogger(c).Warn("admin access denied", zap.String("email", email))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}
