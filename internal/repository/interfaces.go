package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Shrihari6/medflow-nova/internal/model"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.PatientStatus, dischargeDate *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type DoctorRepository interface {
	List(ctx context.Context) ([]*model.Doctor, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	Count(ctx context.Context) (int, error)
}

type StaffRepository interface {
	List(ctx context.Context) ([]*model.Staff, error)
	Count(ctx context.Context) (int, error)
}

type RoomRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Room, error)
	List(ctx context.Context, onlyAvailable bool) ([]*model.Room, error)
	SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
}

type BillRepository interface {
	List(ctx context.Context) ([]*model.Bill, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Bill, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPending(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}
