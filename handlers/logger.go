package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped zap logger from the gin context.
func getLogger(c *gin.Context) *zap.Logger {
	return middleware.RequestLogger(c)
}
