package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/service/auth"
	"github.com/Shrihari6/medflow-nova/pkg/httputil"
)

type Handler struct {
	service auth.AuthService
}

func NewHandler(service auth.AuthService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, tokens)
}

// Logout ends the session. Tokens are stateless, so the server side has
// nothing to revoke; the client discards its copy.
func (h *Handler) Logout(c *gin.Context) {
	httputil.RespondWithSuccess(c, gin.H{"message": "signed out"})
}
