package navigation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shrihari6/medflow-nova/internal/access"
	"github.com/Shrihari6/medflow-nova/internal/middleware"
	"github.com/Shrihari6/medflow-nova/pkg/httputil"
)

// Handler serves the role-resolved navigation menu. The menu is
// recomputed per request from the identity on the token, so signing out
// and back in under a different role immediately changes it.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/navigation", h.GetNavigation)
}

func (h *Handler) GetNavigation(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"menu": access.ResolveMenu(identity.Role),
		"capabilities": gin.H{
			string(access.CapabilityCreatePatient): access.CanPerform(identity.Role, access.CapabilityCreatePatient),
			string(access.CapabilityUpdatePatient): access.CanPerform(identity.Role, access.CapabilityUpdatePatient),
			string(access.CapabilityViewStaff):     access.CanPerform(identity.Role, access.CapabilityViewStaff),
			string(access.CapabilityManageSystem):  access.CanPerform(identity.Role, access.CapabilityManageSystem),
		},
	})
}
