package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shrihari6/medflow-nova/internal/model"
)

type fakePatients struct {
	patients []*model.Patient
	err      error
}

func (f *fakePatients) Create(context.Context, *model.Patient) error { return nil }
func (f *fakePatients) Get(context.Context, uuid.UUID) (*model.Patient, error) {
	return nil, errors.New("not implemented")
}
func (f *fakePatients) List(context.Context) ([]*model.Patient, error) {
	return f.patients, f.err
}
func (f *fakePatients) UpdateStatus(context.Context, uuid.UUID, model.PatientStatus, *time.Time) error {
	return nil
}
func (f *fakePatients) Delete(context.Context, uuid.UUID) error { return nil }
func (f *fakePatients) Count(context.Context) (int, error)      { return len(f.patients), f.err }

type fakeDoctors struct {
	count int
	err   error
}

func (f *fakeDoctors) List(context.Context) ([]*model.Doctor, error) { return nil, f.err }
func (f *fakeDoctors) Get(context.Context, uuid.UUID) (*model.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDoctors) Count(context.Context) (int, error) { return f.count, f.err }

type fakeStaff struct {
	count int
	err   error
}

func (f *fakeStaff) List(context.Context) ([]*model.Staff, error) { return nil, f.err }
func (f *fakeStaff) Count(context.Context) (int, error)           { return f.count, f.err }

type fakeBills struct {
	bills []*model.Bill
	err   error
}

func (f *fakeBills) List(context.Context) ([]*model.Bill, error) { return f.bills, f.err }
func (f *fakeBills) ListByPatient(context.Context, uuid.UUID) ([]*model.Bill, error) {
	return f.bills, f.err
}

func patientAt(name, department string, admitted time.Time) *model.Patient {
	return &model.Patient{
		Base:          model.Base{ID: uuid.New()},
		FullName:      name,
		Department:    department,
		AdmissionDate: admitted,
	}
}

func TestGetOverview(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	patients := []*model.Patient{
		patientAt("a", "Cardiology", base),
		patientAt("b", "Cardiology", base.Add(time.Hour)),
		patientAt("c", "Neurology", base.Add(2*time.Hour)),
	}
	bills := []*model.Bill{
		{Amount: 100},
		{Amount: 250.5},
	}

	svc := NewService(
		&fakePatients{patients: patients},
		&fakeDoctors{count: 7},
		&fakeStaff{count: 12},
		&fakeBills{bills: bills},
		Config{RecentN: 2},
	)

	overview, err := svc.GetOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, overview.TotalPatients)
	assert.Equal(t, 7, overview.TotalDoctors)
	assert.Equal(t, 12, overview.TotalStaff)
	assert.Equal(t, 350.5, overview.TotalRevenue)
	require.Len(t, overview.RecentPatients, 2)
	assert.Equal(t, "c", overview.RecentPatients[0].FullName)
	assert.Equal(t, "b", overview.RecentPatients[1].FullName)
	assert.Equal(t, map[string]int{"Cardiology": 2, "Neurology": 1}, overview.Departments)
}

func TestGetOverviewFetchFailuresDegradeToDefaults(t *testing.T) {
	boom := errors.New("store unreachable")
	svc := NewService(
		&fakePatients{err: boom},
		&fakeDoctors{err: boom},
		&fakeStaff{err: boom},
		&fakeBills{err: boom},
		Config{},
	)

	overview, err := svc.GetOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, overview.TotalPatients)
	assert.Equal(t, 0, overview.TotalDoctors)
	assert.Equal(t, 0, overview.TotalStaff)
	assert.Equal(t, 0.0, overview.TotalRevenue)
	assert.Empty(t, overview.RecentPatients)
	assert.Empty(t, overview.Departments)
	assert.NotNil(t, overview.Departments)
}

func TestGetOverviewCaches(t *testing.T) {
	patientsRepo := &fakePatients{patients: []*model.Patient{
		patientAt("a", "Emergency", time.Now()),
	}}
	svc := NewService(patientsRepo, &fakeDoctors{}, &fakeStaff{}, &fakeBills{}, Config{CacheTTL: time.Minute})

	first, err := svc.GetOverview(context.Background())
	require.NoError(t, err)

	// Backing data changes, cached view stays until the TTL passes.
	patientsRepo.patients = nil
	second, err := svc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, second.TotalPatients)
}
