package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PatientStatus string

const (
	PatientStatusStable     PatientStatus = "stable"
	PatientStatusCritical   PatientStatus = "critical"
	PatientStatusRecovering PatientStatus = "recovering"
	PatientStatusDischarged PatientStatus = "discharged"
)

func (s PatientStatus) Valid() bool {
	switch s {
	case PatientStatusStable, PatientStatusCritical, PatientStatusRecovering, PatientStatusDischarged:
		return true
	}
	return false
}

type Patient struct {
	Base
	PatientID        string         `db:"patient_id" json:"patient_id"`
	FullName         string         `db:"full_name" json:"full_name"`
	Age              int            `db:"age" json:"age"`
	Gender           string         `db:"gender" json:"gender"`
	BloodType        string         `db:"blood_type" json:"blood_type,omitempty"`
	Phone            string         `db:"phone" json:"phone,omitempty"`
	Email            string         `db:"email" json:"email,omitempty"`
	Address          string         `db:"address" json:"address,omitempty"`
	EmergencyContact string         `db:"emergency_contact" json:"emergency_contact,omitempty"`
	EmergencyPhone   string         `db:"emergency_phone" json:"emergency_phone,omitempty"`
	Department       string         `db:"department" json:"department"`
	Condition        string         `db:"condition" json:"condition"`
	Status           PatientStatus  `db:"status" json:"status"`
	AdmissionDate    time.Time      `db:"admission_date" json:"admission_date"`
	DischargeDate    *time.Time     `db:"discharge_date" json:"discharge_date,omitempty"`
	RoomID           *uuid.UUID     `db:"room_id" json:"room_id,omitempty"`
	RoomNumber       *string        `db:"room_number" json:"room_number,omitempty"`
	AssignedDoctorID *uuid.UUID     `db:"assigned_doctor_id" json:"assigned_doctor_id,omitempty"`
	Medications      pq.StringArray `db:"medications" json:"medications"`
	Allergies        pq.StringArray `db:"allergies" json:"allergies"`
	Notes            string         `db:"notes" json:"notes,omitempty"`
}

type AdmitPatientRequest struct {
	PatientID        string   `json:"patient_id" binding:"required"`
	FullName         string   `json:"full_name" binding:"required"`
	Age              int      `json:"age" binding:"required,gt=0,lt=150"`
	Gender           string   `json:"gender" binding:"required"`
	BloodType        string   `json:"blood_type"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email" binding:"omitempty,email"`
	Address          string   `json:"address"`
	EmergencyContact string   `json:"emergency_contact"`
	EmergencyPhone   string   `json:"emergency_phone"`
	Department       string   `json:"department" binding:"required"`
	Condition        string   `json:"condition" binding:"required"`
	Status           string   `json:"status" binding:"omitempty,patientstatus"`
	RoomID           string   `json:"room_id" binding:"omitempty,uuid"`
	Medications      []string `json:"medications"`
	Allergies        []string `json:"allergies"`
}

type UpdatePatientStatusRequest struct {
	Status string `json:"status" binding:"required,patientstatus"`
}

// PatientFilters narrows patient listings. Query is matched client-side by
// the shared report.Filter combinator, not in SQL.
type PatientFilters struct {
	Query      string `form:"q"`
	Department string `form:"department"`
	Status     string `form:"status"`
}
