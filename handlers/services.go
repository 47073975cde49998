package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/catalog"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	CatalogSvc catalog.CatalogService
}

func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{CatalogSvc: svc}
}

// ListServices handles GET /services. With ?fields=name only names are returned.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	namesOnly := c.Query("fields") == "name"
	services, err := h.CatalogSvc.ListServices(c.Request.Context(), namesOnly)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to fetch services", err)
		return
	}
	if namesOnly {
		c.JSON(http.StatusOK, models.ServiceNames(services))
		return
	}
	c.JSON(http.StatusOK, services)
}
