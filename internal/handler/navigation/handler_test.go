package navigation

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shrihari6/medflow-nova/internal/access"
	"github.com/Shrihari6/medflow-nova/internal/middleware"
	"github.com/Shrihari6/medflow-nova/internal/model"
	apperrors "github.com/Shrihari6/medflow-nova/pkg/errors"
)

type navigationResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Menu         []access.MenuItem `json:"menu"`
		Capabilities map[string]bool   `json:"capabilities"`
	} `json:"data"`
}

func getNavigation(t *testing.T, role model.Role) navigationResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(func(token string) (*model.Identity, error) {
		if token == "" {
			return nil, apperrors.Unauthorized(errors.New("invalid token"))
		}
		return &model.Identity{UserID: uuid.New(), Role: role}, nil
	})

	engine := gin.New()
	group := engine.Group("/api/v1")
	group.Use(auth.Authenticate())
	NewHandler().RegisterRoutes(group)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp navigationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func routes(items []access.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Route)
	}
	return out
}

func TestGetNavigation_Admin(t *testing.T) {
	resp := getNavigation(t, model.RoleAdmin)

	assert.Equal(t, []string{"/dashboard", "/patients", "/doctors", "/staff", "/admin"}, routes(resp.Data.Menu))
	assert.True(t, resp.Data.Capabilities["view_staff"])
	assert.True(t, resp.Data.Capabilities["manage_system"])
}

func TestGetNavigation_Doctor(t *testing.T) {
	resp := getNavigation(t, model.RoleDoctor)

	assert.Equal(t, []string{"/dashboard", "/patients", "/doctors"}, routes(resp.Data.Menu))
	assert.True(t, resp.Data.Capabilities["create_patient"])
	assert.False(t, resp.Data.Capabilities["view_staff"])
}

func TestGetNavigation_Patient(t *testing.T) {
	resp := getNavigation(t, model.RolePatient)

	assert.Equal(t, []string{"/patient-portal"}, routes(resp.Data.Menu))
	for capability, allowed := range resp.Data.Capabilities {
		assert.False(t, allowed, "patient role must not hold %s", capability)
	}
}

func TestGetNavigation_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(func(string) (*model.Identity, error) {
		return nil, apperrors.Unauthorized(errors.New("invalid token"))
	})

	engine := gin.New()
	group := engine.Group("/api/v1")
	group.Use(auth.Authenticate())
	NewHandler().RegisterRoutes(group)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
