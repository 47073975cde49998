package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type emailParam struct {
	Email string `uri:"email" binding:"required,email"`
}

// UserHandler serves account and role endpoints.
type UserHandler struct {
	UserSvc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserSvc: svc}
}

// UpsertUser handles PUT /user/:email and returns the upsert result with a fresh token.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var param emailParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid email", err)
		return
	}
	var req models.UserUpsertRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		// An empty body, chunked or not, leaves the profile unchanged.
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid user", err)
			return
		}
	}

	resp, err := h.UserSvc.UpsertUser(c.Request.Context(), param.Email, req)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to save user", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListUsers handles GET /user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.UserSvc.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdmin handles GET /admin/:email.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	isAdmin, err := h.UserSvc.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to fetch user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdmin handles PUT /user/admin/:email. The admin gate runs before it.
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	var param emailParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid email", err)
		return
	}
	result, err := h.UserSvc.MakeAdmin(c.Request.Context(), param.Email)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to update role", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
