package directory

import (
	"github.com/gin-gonic/gin"

	"github.com/Shrihari6/medflow-nova/internal/access"
	"github.com/Shrihari6/medflow-nova/internal/middleware"
	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/service/directory"
	"github.com/Shrihari6/medflow-nova/pkg/httputil"
)

type Handler struct {
	service directory.DirectoryService
	auth    *middleware.AuthMiddleware
}

func NewHandler(service directory.DirectoryService, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{service: service, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/doctors", h.ListDoctors)
	r.GET("/staff", h.auth.RequireCapability(access.CapabilityViewStaff), h.ListStaff)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	var filters model.DoctorFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	doctors, err := h.service.ListDoctors(c.Request.Context(), &filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, doctors)
}

func (h *Handler) ListStaff(c *gin.Context) {
	var filters model.StaffFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	staff, err := h.service.ListStaff(c.Request.Context(), &filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, staff)
}
