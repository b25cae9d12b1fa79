package geomapping

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// shareTolerance absorbs fractional share rounding when auditing that a
// city's active shares sum to 1.0.
var shareTolerance = decimal.NewFromFloat(0.0001)

// postalCountryISO2 anchors postal lookups: DMA coverage is a US concept and
// the postal table carries only a state code.
const postalCountryISO2 = "US"

// GeoMapper resolves cities to DMAs through the slowly-changing mapping
// windows and manages window lifecycle, including the postal-to-city
// resolution table.
type GeoMapper interface {
	ResolveDMA(ctx context.Context, key domain.CityNaturalKey, asOf time.Time) ([]domain.DMAShareResult, error)
	AddMapping(ctx context.Context, key domain.CityNaturalKey, dmaCode, dmaName string, share decimal.Decimal, start, end time.Time) error
	RemapCity(ctx context.Context, key domain.CityNaturalKey, dmaCode string, share decimal.Decimal, effective time.Time) error
	AuditShares(ctx context.Context) ([]domain.ShareViolation, error)
	ResolvePostal(ctx context.Context, postalCode, stateCode string) (*domain.PostalCityMapping, error)
	RegisterPostalMapping(ctx context.Context, m *domain.PostalCityMapping) (int, error)
}

type Service struct {
	dimensionRepo repository.DimensionRepository
	cityDMARepo   repository.CityDMARepository
}

func NewService(dimensionRepo repository.DimensionRepository, cityDMARepo repository.CityDMARepository) GeoMapper {
	return &Service{
		dimensionRepo: dimensionRepo,
		cityDMARepo:   cityDMARepo,
	}
}

// ResolveDMA returns the DMAs covering the city on the given day. A city
// with no active window resolves to an empty slice; callers decide whether
// unattributed is acceptable.
func (s *Service) ResolveDMA(ctx context.Context, key domain.CityNaturalKey, asOf time.Time) ([]domain.DMAShareResult, error) {
	ref, err := s.dimensionRepo.LookupCityRef(ctx, key)
	if err != nil {
		return nil, err
	}

	return s.cityDMARepo.ActiveMappings(ctx, ref, asOf)
}

// AddMapping opens a mapping window for the city, creating the DMA on first
// reference. Zero start and end fall back to the sentinel window bounds.
func (s *Service) AddMapping(ctx context.Context, key domain.CityNaturalKey, dmaCode, dmaName string, share decimal.Decimal, start, end time.Time) error {
	if start.IsZero() {
		start = domain.DefaultEffectiveStart
	}
	if end.IsZero() {
		end = domain.FarFutureEndDate
	}

	if err := validateShare(share); err != nil {
		return err
	}
	if !start.Before(end) {
		return domain.NewWarehouseError("add dma mapping", domain.ErrValidation, "effective start must precede effective end")
	}

	ref, err := s.dimensionRepo.LookupCityRef(ctx, key)
	if err != nil {
		return err
	}

	dmaID, err := s.dimensionRepo.GetOrCreateDMA(ctx, dmaCode, dmaName)
	if err != nil {
		return err
	}

	return s.cityDMARepo.InsertMapping(ctx, domain.CityDMAMapping{
		CityRef:            ref,
		DMAID:              dmaID,
		EffectiveStartDate: start,
		EffectiveEndDate:   end,
		DMAShare:           share,
	})
}

// RemapCity closes the city's open window at the effective date and opens a
// new window for the target DMA in a single transaction. Facts dated before
// the effective date keep resolving to the old DMA.
func (s *Service) RemapCity(ctx context.Context, key domain.CityNaturalKey, dmaCode string, share decimal.Decimal, effective time.Time) error {
	if effective.IsZero() {
		return domain.NewWarehouseError("remap city", domain.ErrValidation, "effective date is required")
	}
	if err := validateShare(share); err != nil {
		return err
	}

	ref, err := s.dimensionRepo.LookupCityRef(ctx, key)
	if err != nil {
		return err
	}

	dmaID, err := s.dimensionRepo.GetOrCreateDMA(ctx, dmaCode, "")
	if err != nil {
		return err
	}

	if err := s.cityDMARepo.RemapCity(ctx, ref, dmaID, share, effective); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"city_id":   ref.CityID,
		"dma_code":  dmaCode,
		"effective": effective.Format("2006-01-02"),
	}).Info("city remapped to new dma")

	return nil
}

// ResolvePostal answers which city a (postal code, state code) pair belongs
// to. A mapping whose city_id is still null gets backfilled on the spot when
// the city has since been created; otherwise it is returned unresolved and a
// later call retries.
func (s *Service) ResolvePostal(ctx context.Context, postalCode, stateCode string) (*domain.PostalCityMapping, error) {
	if postalCode == "" || stateCode == "" {
		return nil, domain.NewWarehouseError("resolve postal", domain.ErrValidation,
			"postal_code and state_code are required")
	}

	mapping, err := s.cityDMARepo.GetPostalMapping(ctx, postalCode, stateCode)
	if err != nil {
		return nil, err
	}
	if mapping.CityID != nil {
		return mapping, nil
	}

	cityID, err := s.lookupPostalCity(ctx, mapping.CityName, mapping.StateCode)
	if err != nil {
		return nil, err
	}
	if cityID == nil {
		return mapping, nil
	}

	if err := s.cityDMARepo.BackfillPostalCityID(ctx, mapping.ID, *cityID); err != nil {
		return nil, err
	}
	mapping.CityID = cityID

	log.L.WithFields(log.Fields{
		"postal_code": postalCode,
		"state_code":  stateCode,
		"city_id":     *cityID,
	}).Info("postal mapping backfilled with city id")

	return mapping, nil
}

// RegisterPostalMapping adds a postal-to-city row, resolving city_id up front
// when the city already exists in the dimension store.
func (s *Service) RegisterPostalMapping(ctx context.Context, m *domain.PostalCityMapping) (int, error) {
	if m.PostalCode == "" || m.StateCode == "" || m.CityName == "" {
		return 0, domain.NewWarehouseError("register postal mapping", domain.ErrValidation,
			"postal_code, state_code and city_name are required")
	}

	if m.CityID == nil {
		cityID, err := s.lookupPostalCity(ctx, m.CityName, m.StateCode)
		if err != nil {
			return 0, err
		}
		m.CityID = cityID
	}

	return s.cityDMARepo.CreatePostalMapping(ctx, m)
}

// lookupPostalCity resolves the mapping's city name against the dimension
// store. Nil, not an error, when the city does not exist yet: staging rows
// carry the state code as the region name, so the same key matches here.
func (s *Service) lookupPostalCity(ctx context.Context, cityName, stateCode string) (*int, error) {
	ref, err := s.dimensionRepo.LookupCityRef(ctx, domain.CityNaturalKey{
		CountryISO2: postalCountryISO2,
		RegionName:  stateCode,
		CityName:    cityName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ref.CityID, nil
}

// AuditShares sweeps every mapping window and reports the intervals where a
// city's active shares do not sum to 1.0. Shares are advisory, so violations
// are reported instead of rejected.
func (s *Service) AuditShares(ctx context.Context) ([]domain.ShareViolation, error) {
	windows, err := s.cityDMARepo.ListWindows(ctx)
	if err != nil {
		return nil, err
	}

	byCity := make(map[domain.CityRef][]domain.CityDMAMapping)
	for _, w := range windows {
		byCity[w.CityRef] = append(byCity[w.CityRef], w)
	}

	violations := make([]domain.ShareViolation, 0)
	for ref, cityWindows := range byCity {
		violations = append(violations, auditCityShares(ref, cityWindows)...)
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].CityID != violations[j].CityID {
			return violations[i].CityID < violations[j].CityID
		}
		return violations[i].WindowStart.Before(violations[j].WindowStart)
	})

	return violations, nil
}

// auditCityShares splits the city's timeline at every window boundary and
// sums the shares active within each elementary interval.
func auditCityShares(ref domain.CityRef, windows []domain.CityDMAMapping) []domain.ShareViolation {
	boundarySet := make(map[time.Time]struct{})
	for _, w := range windows {
		boundarySet[w.EffectiveStartDate] = struct{}{}
		boundarySet[w.EffectiveEndDate] = struct{}{}
	}

	boundaries := make([]time.Time, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i].Before(boundaries[j]) })

	violations := make([]domain.ShareViolation, 0)
	for i := 0; i < len(boundaries)-1; i++ {
		start, end := boundaries[i], boundaries[i+1]

		sum := decimal.Zero
		covered := false
		for _, w := range windows {
			if w.ActiveOn(start) {
				sum = sum.Add(w.DMAShare)
				covered = true
			}
		}

		if !covered {
			continue
		}

		if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(shareTolerance) {
			violations = append(violations, domain.ShareViolation{
				CityRef:     ref,
				WindowStart: start,
				WindowEnd:   end,
				ShareSum:    sum,
			})
		}
	}

	return violations
}

func validateShare(share decimal.Decimal) error {
	if share.LessThanOrEqual(decimal.Zero) || share.GreaterThan(decimal.NewFromInt(1)) {
		return domain.NewWarehouseError("validate dma share", domain.ErrValidation, "dma_share must be in (0, 1]")
	}
	return nil
}
