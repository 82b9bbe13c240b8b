package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shrihari6/medflow-nova/internal/access"
	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/pkg/httputil"
)

const identityKey = "identity"

type AuthMiddleware struct {
	validate func(token string) (*model.Identity, error)
}

func NewAuthMiddleware(validate func(token string) (*model.Identity, error)) *AuthMiddleware {
	return &AuthMiddleware{validate: validate}
}

// Authenticate verifies the bearer token and stores the resulting identity
// in the request context. Handlers read it back with IdentityFrom and pass
// it explicitly into capability checks.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Code: http.StatusUnauthorized, Message: "missing authorization header"},
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Code: http.StatusUnauthorized, Message: "invalid authorization format"},
			})
			return
		}

		identity, err := m.validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Code: http.StatusUnauthorized, Message: "invalid token"},
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireCapability refuses the request before any store call when the
// authenticated role lacks the capability. The access resolver is the
// single source of truth; database policies remain a separate outer layer.
func (m *AuthMiddleware) RequireCapability(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Code: http.StatusUnauthorized, Message: "not authenticated"},
			})
			return
		}

		if !access.CanPerform(identity.Role, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Code: http.StatusForbidden, Message: "permission denied"},
			})
			return
		}

		c.Next()
	}
}

// IdentityFrom returns the authenticated identity set by Authenticate.
func IdentityFrom(c *gin.Context) (*model.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*model.Identity)
	return identity, ok
}
