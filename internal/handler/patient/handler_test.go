package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shrihari6/medflow-nova/internal/middleware"
	"github.com/Shrihari6/medflow-nova/internal/model"
	apperrors "github.com/Shrihari6/medflow-nova/pkg/errors"
)

type fakeService struct {
	admitted    *model.Patient
	admitErr    error
	admitCalled bool
	patients    []*model.Patient
	rooms       []*model.Room
}

func (f *fakeService) AdmitPatient(_ context.Context, _ *model.Identity, req *model.AdmitPatientRequest) (*model.Patient, error) {
	f.admitCalled = true
	if f.admitErr != nil {
		return nil, f.admitErr
	}
	if f.admitted != nil {
		return f.admitted, nil
	}
	return &model.Patient{FullName: req.FullName, Status: model.PatientStatusStable}, nil
}

func (f *fakeService) GetPatient(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("patient", nil)
}

func (f *fakeService) ListPatients(_ context.Context, _ *model.PatientFilters) ([]*model.Patient, error) {
	return f.patients, nil
}

func (f *fakeService) UpdateStatus(_ context.Context, _ *model.Identity, id uuid.UUID, status model.PatientStatus) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			p.Status = status
			return p, nil
		}
	}
	return nil, apperrors.NotFound("patient", nil)
}

func (f *fakeService) ListRooms(_ context.Context, _ bool) ([]*model.Room, error) {
	return f.rooms, nil
}

func setupRouter(t *testing.T, svc *fakeService, role model.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	auth := middleware.NewAuthMiddleware(func(token string) (*model.Identity, error) {
		if token != "valid-token" {
			return nil, apperrors.Unauthorized(errors.New("invalid token"))
		}
		return &model.Identity{UserID: uuid.New(), Email: "user@hospital.test", Role: role}, nil
	})

	engine := gin.New()
	group := engine.Group("/api/v1")
	group.Use(auth.Authenticate())
	NewHandler(svc, auth).RegisterRoutes(group)
	return engine
}

func doRequest(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func validAdmitBody() map[string]any {
	return map[string]any{
		"patient_id": "P-1001",
		"full_name":  "John Smith",
		"age":        45,
		"gender":     "male",
		"department": "Cardiology",
		"condition":  "Hypertension",
	}
}

func TestAdmitPatient_RequiresToken(t *testing.T) {
	svc := &fakeService{}
	engine := setupRouter(t, svc, model.RoleAdmin)

	w := doRequest(engine, http.MethodPost, "/api/v1/patients", "", validAdmitBody())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, svc.admitCalled)
}

func TestAdmitPatient_ForbiddenForPatientRole(t *testing.T) {
	svc := &fakeService{}
	engine := setupRouter(t, svc, model.RolePatient)

	w := doRequest(engine, http.MethodPost, "/api/v1/patients", "valid-token", validAdmitBody())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, svc.admitCalled, "service must not be reached when the role lacks the capability")
}

func TestAdmitPatient_AllowedForDoctor(t *testing.T) {
	svc := &fakeService{}
	engine := setupRouter(t, svc, model.RoleDoctor)

	w := doRequest(engine, http.MethodPost, "/api/v1/patients", "valid-token", validAdmitBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.admitCalled)

	var resp struct {
		Success bool          `json:"success"`
		Data    model.Patient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "John Smith", resp.Data.FullName)
}

func TestAdmitPatient_InvalidBody(t *testing.T) {
	svc := &fakeService{}
	engine := setupRouter(t, svc, model.RoleAdmin)

	body := validAdmitBody()
	body["age"] = 0

	w := doRequest(engine, http.MethodPost, "/api/v1/patients", "valid-token", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.admitCalled)
}

func TestListPatients_AnyAuthenticatedRole(t *testing.T) {
	svc := &fakeService{patients: []*model.Patient{
		{FullName: "Alice Brown", Status: model.PatientStatusStable},
		{FullName: "Bob Jones", Status: model.PatientStatusCritical},
	}}
	engine := setupRouter(t, svc, model.RolePatient)

	w := doRequest(engine, http.MethodGet, "/api/v1/patients?q=alice", "valid-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatus_ForbiddenForPatientRole(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{patients: []*model.Patient{{Base: model.Base{ID: id}, Status: model.PatientStatusStable}}}
	engine := setupRouter(t, svc, model.RolePatient)

	w := doRequest(engine, http.MethodPut, "/api/v1/patients/"+id.String()+"/status", "valid-token",
		map[string]any{"status": "critical"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, model.PatientStatusStable, svc.patients[0].Status)
}

func TestUpdateStatus_AllowedForStaff(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{patients: []*model.Patient{{Base: model.Base{ID: id}, Status: model.PatientStatusStable}}}
	engine := setupRouter(t, svc, model.RoleStaff)

	w := doRequest(engine, http.MethodPut, "/api/v1/patients/"+id.String()+"/status", "valid-token",
		map[string]any{"status": "recovering"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.PatientStatusRecovering, svc.patients[0].Status)
}

func TestGetPatient_NotFound(t *testing.T) {
	svc := &fakeService{}
	engine := setupRouter(t, svc, model.RoleAdmin)

	w := doRequest(engine, http.MethodGet, "/api/v1/patients/"+uuid.NewString(), "valid-token", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPatient_InvalidID(t *testing.T) {
	svc := &fakeService{}
	engine := setupRouter(t, svc, model.RoleAdmin)

	w := doRequest(engine, http.MethodGet, "/api/v1/patients/not-a-uuid", "valid-token", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRooms(t *testing.T) {
	svc := &fakeService{rooms: []*model.Room{{RoomNumber: "101"}, {RoomNumber: "102"}}}
	engine := setupRouter(t, svc, model.RoleStaff)

	w := doRequest(engine, http.MethodGet, "/api/v1/rooms?available=true", "valid-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
