package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/report"
	"github.com/Shrihari6/medflow-nova/internal/repository"
)

type BillingService interface {
	ListBills(ctx context.Context, patientID *uuid.UUID) ([]*model.Bill, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type Service struct {
	repo repository.BillRepository
}

func NewService(repo repository.BillRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBills(ctx context.Context, patientID *uuid.UUID) ([]*model.Bill, error) {
	if patientID != nil {
		bills, err := s.repo.ListByPatient(ctx, *patientID)
		if err != nil {
			return nil, fmt.Errorf("failed to list patient bills: %w", err)
		}
		return bills, nil
	}

	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list bills: %w", err)
	}
	return report.SumAmounts(bills, func(b *model.Bill) any { return b.Amount }), nil
}
