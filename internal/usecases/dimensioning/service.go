package dimensioning

import (
	"context"
	"time"

	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// Dimensioner exposes the dimension store to the API surface: calendar
// population, the platform DMA label registry, and the metric availability
// matrix. The getOrCreate entity cycle itself lives in the repository and is
// exercised by reconciliation and fact ingestion.
type Dimensioner interface {
	PopulateCalendar(ctx context.Context, from, to time.Time) (int, error)
	RegisterDMALabel(ctx context.Context, platformName, label, dmaCode, dmaName string) (int, error)
	ResolveDMALabel(ctx context.Context, platformName, label string) (int, error)

	SetMetricAvailability(ctx context.Context, m *domain.MetricAvailability) error
	GetMetricAvailability(ctx context.Context, platformID int, locationLevel, metricName string) (*domain.MetricAvailability, error)
	ListMetricAvailability(ctx context.Context, platformID int) ([]domain.MetricAvailability, error)
}

type Service struct {
	dimensionRepo repository.DimensionRepository
	metricRepo    repository.MetricAvailabilityRepository
}

func NewService(dimensionRepo repository.DimensionRepository, metricRepo repository.MetricAvailabilityRepository) Dimensioner {
	return &Service{
		dimensionRepo: dimensionRepo,
		metricRepo:    metricRepo,
	}
}

func (s *Service) PopulateCalendar(ctx context.Context, from, to time.Time) (int, error) {
	count, err := s.dimensionRepo.PopulateCalendar(ctx, from, to)
	if err != nil {
		return 0, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
		"days": count,
	}).Info("calendar populated")

	return count, nil
}

// RegisterDMALabel binds a platform ad-targeting label to a canonical DMA,
// creating platform and DMA on first reference.
func (s *Service) RegisterDMALabel(ctx context.Context, platformName, label, dmaCode, dmaName string) (int, error) {
	platformID, err := s.dimensionRepo.GetOrCreatePlatform(ctx, platformName)
	if err != nil {
		return 0, err
	}

	dmaID, err := s.dimensionRepo.GetOrCreateDMA(ctx, dmaCode, dmaName)
	if err != nil {
		return 0, err
	}

	return s.dimensionRepo.GetOrCreatePlatformDMALabel(ctx, platformID, label, dmaID)
}

// ResolveDMALabel returns the DMA bound to a platform label. Labels are
// scoped per platform; an unknown platform or label is NotFound.
func (s *Service) ResolveDMALabel(ctx context.Context, platformName, label string) (int, error) {
	platformID, err := s.dimensionRepo.GetOrCreatePlatform(ctx, platformName)
	if err != nil {
		return 0, err
	}

	return s.dimensionRepo.LookupDMAByPlatformLabel(ctx, platformID, label)
}

func (s *Service) SetMetricAvailability(ctx context.Context, m *domain.MetricAvailability) error {
	if m.LocationLevel == "" || m.MetricName == "" {
		return domain.NewWarehouseError("set metric availability", domain.ErrValidation,
			"location_level and metric_name are required")
	}

	return s.metricRepo.Set(ctx, m)
}

func (s *Service) GetMetricAvailability(ctx context.Context, platformID int, locationLevel, metricName string) (*domain.MetricAvailability, error) {
	return s.metricRepo.Get(ctx, platformID, locationLevel, metricName)
}

func (s *Service) ListMetricAvailability(ctx context.Context, platformID int) ([]domain.MetricAvailability, error) {
	return s.metricRepo.ListByPlatform(ctx, platformID)
}
