package model

import (
	"time"

	"github.com/google/uuid"
)

type BillStatus string

const (
	BillStatusPaid    BillStatus = "paid"
	BillStatusPending BillStatus = "pending"
	BillStatusOverdue BillStatus = "overdue"
)

type Bill struct {
	Base
	BillNumber  string     `db:"bill_number" json:"bill_number"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	Amount      float64    `db:"amount" json:"amount"`
	Description string     `db:"description" json:"description"`
	Status      BillStatus `db:"status" json:"status"`
	Date        time.Time  `db:"date" json:"date"`
	PaidDate    *time.Time `db:"paid_date" json:"paid_date,omitempty"`
}
