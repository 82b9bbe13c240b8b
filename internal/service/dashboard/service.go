package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/report"
	"github.com/Shrihari6/medflow-nova/internal/repository"
)

const (
	cacheKey       = "dashboard_overview"
	defaultRecentN = 5
)

// Overview is the derived view for the landing page. Every field degrades
// to its zero value when the backing fetch fails; a store outage renders
// an empty dashboard, never an error page.
type Overview struct {
	TotalPatients  int              `json:"total_patients"`
	TotalDoctors   int              `json:"total_doctors"`
	TotalStaff     int              `json:"total_staff"`
	TotalRevenue   float64          `json:"total_revenue"`
	RecentPatients []*model.Patient `json:"recent_patients"`
	Departments    map[string]int   `json:"departments"`
}

type DashboardService interface {
	GetOverview(ctx context.Context) (*Overview, error)
}

type Config struct {
	CacheTTL time.Duration
	RecentN  int
}

type Service struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	staffRepo   repository.StaffRepository
	billRepo    repository.BillRepository
	cache       *cache.Cache
	recentN     int
}

func NewService(
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	staffRepo repository.StaffRepository,
	billRepo repository.BillRepository,
	cfg Config,
) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	recentN := cfg.RecentN
	if recentN <= 0 {
		recentN = defaultRecentN
	}

	return &Service{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		staffRepo:   staffRepo,
		billRepo:    billRepo,
		cache:       cache.New(ttl, 2*ttl),
		recentN:     recentN,
	}
}

// GetOverview assembles the dashboard. The four independent fetches are
// issued concurrently and joined; each populates its own field so
// ordering between them does not matter.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*Overview), nil
	}

	overview := &Overview{
		RecentPatients: []*model.Patient{},
		Departments:    map[string]int{},
	}

	var (
		wg       sync.WaitGroup
		patients []*model.Patient
		bills    []*model.Bill
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		overview.TotalDoctors = s.count(ctx, "doctors", s.doctorRepo.Count)
	}()
	go func() {
		defer wg.Done()
		overview.TotalStaff = s.count(ctx, "staff", s.staffRepo.Count)
	}()
	go func() {
		defer wg.Done()
		var err error
		if patients, err = s.patientRepo.List(ctx); err != nil {
			log.Error().Err(err).Msg("dashboard patient fetch failed, using empty set")
			patients = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if bills, err = s.billRepo.List(ctx); err != nil {
			log.Error().Err(err).Msg("dashboard bill fetch failed, using empty set")
			bills = nil
		}
	}()
	wg.Wait()

	overview.TotalPatients = len(patients)
	overview.TotalRevenue = report.SumAmounts(bills, func(b *model.Bill) any { return b.Amount })
	overview.RecentPatients = report.MostRecent(patients, s.recentN, func(p *model.Patient) time.Time {
		return p.AdmissionDate
	})
	overview.Departments = report.GroupCount(patients, func(p *model.Patient) string {
		return p.Department
	})

	s.cache.SetDefault(cacheKey, overview)
	return overview, nil
}

func (s *Service) count(ctx context.Context, name string, fn func(context.Context) (int, error)) int {
	n, err := fn(ctx)
	if err != nil {
		log.Error().Err(err).Str("collection", name).Msg("dashboard count failed, defaulting to 0")
		return 0
	}
	return n
}
