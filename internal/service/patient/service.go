package patient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Shrihari6/medflow-nova/internal/access"
	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/report"
	"github.com/Shrihari6/medflow-nova/internal/repository"
	apperrors "github.com/Shrihari6/medflow-nova/pkg/errors"
)

type PatientService interface {
	AdmitPatient(ctx context.Context, actor *model.Identity, req *model.AdmitPatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	ListPatients(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error)
	UpdateStatus(ctx context.Context, actor *model.Identity, id uuid.UUID, status model.PatientStatus) (*model.Patient, error)
	ListRooms(ctx context.Context, onlyAvailable bool) ([]*model.Room, error)
}

type Service struct {
	repo       repository.PatientRepository
	roomRepo   repository.RoomRepository
	outboxRepo repository.OutboxRepository
}

func NewService(repo repository.PatientRepository, roomRepo repository.RoomRepository, outboxRepo repository.OutboxRepository) *Service {
	return &Service{
		repo:       repo,
		roomRepo:   roomRepo,
		outboxRepo: outboxRepo,
	}
}

// AdmitPatient inserts the patient record and, when a room was selected,
// marks that room occupied. The two writes are not atomic in the store, so
// a failed room update triggers the compensating action: the inserted
// patient is deleted and the caller sees the failure. If the compensation
// itself fails the error names the orphaned record instead of hiding it.
func (s *Service) AdmitPatient(ctx context.Context, actor *model.Identity, req *model.AdmitPatientRequest) (*model.Patient, error) {
	if actor == nil || !access.CanPerform(actor.Role, access.CapabilityCreatePatient) {
		return nil, apperrors.Forbidden("role may not create patient records")
	}

	patient, err := s.buildPatient(req)
	if err != nil {
		return nil, err
	}

	var room *model.Room
	if patient.RoomID != nil {
		room, err = s.roomRepo.Get(ctx, *patient.RoomID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve selected room: %w", err)
		}
		if room.IsOccupied {
			return nil, apperrors.Conflict(fmt.Sprintf("room %s is already occupied", room.RoomNumber), nil)
		}
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to admit patient: %w", err)
	}

	if room != nil {
		if err := s.roomRepo.SetOccupied(ctx, room.ID, true); err != nil {
			// Compensating action: roll the insert back so the room
			// occupancy invariant holds, and surface the failure either way.
			if delErr := s.repo.Delete(ctx, patient.ID); delErr != nil {
				log.Error().Err(delErr).
					Str("patient_id", patient.ID.String()).
					Str("room_id", room.ID.String()).
					Msg("compensation failed, patient record orphaned without room occupancy")
				return nil, fmt.Errorf("room assignment failed and rollback of patient %s failed, manual reconciliation required: %w", patient.ID, err)
			}
			return nil, fmt.Errorf("room assignment failed, admission rolled back: %w", err)
		}
		patient.RoomNumber = &room.RoomNumber
	}

	s.recordEvent(ctx, model.EventPatientAdmitted, patient)
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// ListPatients fetches all patients newest-admission-first and applies the
// shared filter combinator over name, human-readable ID and department.
func (s *Service) ListPatients(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	if filters == nil {
		return patients, nil
	}

	if filters.Status != "" || filters.Department != "" {
		filtered := make([]*model.Patient, 0, len(patients))
		for _, p := range patients {
			if filters.Status != "" && string(p.Status) != filters.Status {
				continue
			}
			if filters.Department != "" && p.Department != filters.Department {
				continue
			}
			filtered = append(filtered, p)
		}
		patients = filtered
	}

	return report.Filter(patients, filters.Query, func(p *model.Patient) []string {
		return []string{p.FullName, p.PatientID, p.Department}
	}), nil
}

func (s *Service) UpdateStatus(ctx context.Context, actor *model.Identity, id uuid.UUID, status model.PatientStatus) (*model.Patient, error) {
	if actor == nil || !access.CanPerform(actor.Role, access.CapabilityUpdatePatient) {
		return nil, apperrors.Forbidden("role may not update patient records")
	}
	if !status.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid patient status %q", status), nil)
	}

	// Discharge records the date; releasing the room is reconciled out of
	// band, not here.
	var dischargeDate *time.Time
	if status == model.PatientStatusDischarged {
		now := time.Now()
		dischargeDate = &now
	}

	if err := s.repo.UpdateStatus(ctx, id, status, dischargeDate); err != nil {
		return nil, fmt.Errorf("failed to update patient status: %w", err)
	}

	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload patient: %w", err)
	}

	s.recordEvent(ctx, model.EventPatientStatusChanged, patient)
	return patient, nil
}

func (s *Service) ListRooms(ctx context.Context, onlyAvailable bool) ([]*model.Room, error) {
	rooms, err := s.roomRepo.List(ctx, onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *Service) buildPatient(req *model.AdmitPatientRequest) (*model.Patient, error) {
	status := model.PatientStatus(req.Status)
	if req.Status == "" {
		status = model.PatientStatusStable
	}
	if !status.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid patient status %q", req.Status), nil)
	}

	patient := &model.Patient{
		Base:             model.Base{ID: uuid.New()},
		PatientID:        req.PatientID,
		FullName:         req.FullName,
		Age:              req.Age,
		Gender:           req.Gender,
		BloodType:        req.BloodType,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Department:       req.Department,
		Condition:        req.Condition,
		Status:           status,
		AdmissionDate:    time.Now(),
		Medications:      req.Medications,
		Allergies:        req.Allergies,
	}
	if patient.Medications == nil {
		patient.Medications = []string{}
	}
	if patient.Allergies == nil {
		patient.Allergies = []string{}
	}

	if req.RoomID != "" {
		roomID, err := uuid.Parse(req.RoomID)
		if err != nil {
			return nil, apperrors.BadRequest("invalid room ID", err)
		}
		patient.RoomID = &roomID
	}

	return patient, nil
}

// recordEvent writes an outbox row; event delivery is best effort and must
// never fail the admission that already committed.
func (s *Service) recordEvent(ctx context.Context, eventType string, patient *model.Patient) {
	payload, err := json.Marshal(patient)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to marshal patient event")
		return
	}
	if err := s.outboxRepo.Create(ctx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   payload,
	}); err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to record outbox event")
	}
}
