package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	DoctorSvc doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{DoctorSvc: svc}
}

// ListDoctors handles GET /doctor.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.DoctorSvc.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to fetch doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /doctor.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid doctor", err)
		return
	}
	created, err := h.DoctorSvc.AddDoctor(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to add doctor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": created.ID})
}

// DeleteDoctor handles DELETE /doctor/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	deleted, err := h.DoctorSvc.DeleteDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, doctor.ErrInvalidDoctorID) {
			status = http.StatusBadRequest
		}
		utils.JSONError(c, getLogger(c), status, "failed to delete doctor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
