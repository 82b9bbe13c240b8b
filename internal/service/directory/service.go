// Package directory serves the doctor and staff listings. Search is done
// with the shared filter combinator over the fields each card shows.
package directory

import (
	"context"
	"fmt"

	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/report"
	"github.com/Shrihari6/medflow-nova/internal/repository"
)

type DirectoryService interface {
	ListDoctors(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error)
	ListStaff(ctx context.Context, filters *model.StaffFilters) ([]*model.Staff, error)
}

type Service struct {
	doctorRepo repository.DoctorRepository
	staffRepo  repository.StaffRepository
}

func NewService(doctorRepo repository.DoctorRepository, staffRepo repository.StaffRepository) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		staffRepo:  staffRepo,
	}
}

func (s *Service) ListDoctors(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	if filters == nil {
		return doctors, nil
	}

	return report.Filter(doctors, filters.Query, func(d *model.Doctor) []string {
		return []string{d.FullName, d.Specialization, d.Department}
	}), nil
}

func (s *Service) ListStaff(ctx context.Context, filters *model.StaffFilters) ([]*model.Staff, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	if filters == nil {
		return staff, nil
	}

	return report.Filter(staff, filters.Query, func(m *model.Staff) []string {
		return []string{m.FullName, m.Role, m.Department}
	}), nil
}
