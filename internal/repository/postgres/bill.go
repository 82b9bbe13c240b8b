package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/repository"
)

type billRepository struct {
	db *sqlx.DB
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) List(ctx context.Context) ([]*model.Bill, error) {
	query := `SELECT * FROM bills ORDER BY date DESC`
	var bills []*model.Bill
	if err := r.db.SelectContext(ctx, &bills, query); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (r *billRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Bill, error) {
	query := `SELECT * FROM bills WHERE patient_id = $1 ORDER BY date DESC`
	var bills []*model.Bill
	if err := r.db.SelectContext(ctx, &bills, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list bills for patient: %w", err)
	}
	return bills, nil
}
