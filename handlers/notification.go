package handlers

import (
	"net/http"

	notificationRepo "doctorsportal/database/repository/notification"
	"doctorsportal/middleware"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// ListNotifications handles GET /notifications?email=, restricted to the token owner.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	email := c.Query("email")
	if email != middleware.RequesterEmail(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	items, err := h.Repo.FindByPatient(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to fetch notifications", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
