package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shrihari6/medflow-nova/internal/model"
)

type fakeDoctors struct {
	doctors []*model.Doctor
	err     error
}

func (f *fakeDoctors) List(context.Context) ([]*model.Doctor, error) { return f.doctors, f.err }
func (f *fakeDoctors) Get(context.Context, uuid.UUID) (*model.Doctor, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDoctors) Count(context.Context) (int, error) { return len(f.doctors), f.err }

type fakeStaff struct {
	staff []*model.Staff
	err   error
}

func (f *fakeStaff) List(context.Context) ([]*model.Staff, error) { return f.staff, f.err }
func (f *fakeStaff) Count(context.Context) (int, error)           { return len(f.staff), f.err }

func TestListDoctorsFiltersByQuery(t *testing.T) {
	doctors := []*model.Doctor{
		{FullName: "Dr. Alice Heart", Specialization: "Cardiology", Department: "Cardiology"},
		{FullName: "Dr. Bob Brain", Specialization: "Neurology", Department: "Neurology"},
	}
	svc := NewService(&fakeDoctors{doctors: doctors}, &fakeStaff{})

	got, err := svc.ListDoctors(context.Background(), &model.DoctorFilters{Query: "cardio"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Alice Heart", got[0].FullName)
}

func TestListDoctorsEmptyQueryReturnsAll(t *testing.T) {
	doctors := []*model.Doctor{
		{FullName: "Dr. Alice Heart"},
		{FullName: "Dr. Bob Brain"},
	}
	svc := NewService(&fakeDoctors{doctors: doctors}, &fakeStaff{})

	got, err := svc.ListDoctors(context.Background(), &model.DoctorFilters{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListDoctorsPropagatesError(t *testing.T) {
	svc := NewService(&fakeDoctors{err: errors.New("down")}, &fakeStaff{})

	_, err := svc.ListDoctors(context.Background(), nil)

	assert.Error(t, err)
}

func TestListStaffFiltersByQuery(t *testing.T) {
	staff := []*model.Staff{
		{FullName: "Nina Nurse", Role: "Nurse", Department: "Emergency"},
		{FullName: "Tom Tech", Role: "Technician", Department: "Radiology"},
	}
	svc := NewService(&fakeDoctors{}, &fakeStaff{staff: staff})

	got, err := svc.ListStaff(context.Background(), &model.StaffFilters{Query: "nurse"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nina Nurse", got[0].FullName)
}
