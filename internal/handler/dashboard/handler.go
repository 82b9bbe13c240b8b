package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/Shrihari6/medflow-nova/internal/service/dashboard"
	"github.com/Shrihari6/medflow-nova/pkg/httputil"
)

type Handler struct {
	service dashboard.DashboardService
}

func NewHandler(service dashboard.DashboardService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetOverview)
}

func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, overview)
}
