package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel dates bounding city→DMA mapping windows. A window whose end equals
// FarFutureEndDate is the currently-open window for its city.
var (
	DefaultEffectiveStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	FarFutureEndDate      = time.Date(2999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// CityNaturalKey identifies a city by business keys, as staging rows and API
// callers do. CityRef is its surrogate-keyed counterpart; resolution between
// the two is an explicit lookup, never an overloaded column.
type CityNaturalKey struct {
	CountryISO2 string `json:"country_iso2"`
	RegionName  string `json:"region_name"`
	CityName    string `json:"city_name"`
}

type CityRef struct {
	CountryID int `json:"country_id"`
	RegionID  int `json:"region_id"`
	CityID    int `json:"city_id"`
}

// CityDMAMapping maps a city to a DMA over [EffectiveStartDate,
// EffectiveEndDate) with a fractional share in (0, 1]. Windows for the same
// city must never overlap; the shares of all DMAs covering a city on any day
// should sum to 1.0.
type CityDMAMapping struct {
	CityRef
	DMAID              int             `json:"dma_id"`
	EffectiveStartDate time.Time       `json:"effective_start_date"`
	EffectiveEndDate   time.Time       `json:"effective_end_date"`
	DMAShare           decimal.Decimal `json:"dma_share"`
}

// ActiveOn reports whether the window covers the given day. Start inclusive,
// end exclusive.
func (m CityDMAMapping) ActiveOn(day time.Time) bool {
	return !day.Before(m.EffectiveStartDate) && day.Before(m.EffectiveEndDate)
}

// Overlaps reports whether two [start, end) ranges intersect.
func (m CityDMAMapping) Overlaps(start, end time.Time) bool {
	return m.EffectiveStartDate.Before(end) && start.Before(m.EffectiveEndDate)
}

// IsOpen reports whether this is the city's currently-open window.
func (m CityDMAMapping) IsOpen() bool {
	return m.EffectiveEndDate.Equal(FarFutureEndDate)
}

// DMAShareResult is one (DMA, share) pair active for a city on a given day.
type DMAShareResult struct {
	DMAID   int             `json:"dma_id"`
	DMACode string          `json:"dma_code"`
	Share   decimal.Decimal `json:"share"`
}

// ShareViolation reports a city whose active DMA shares do not sum to 1.0
// over a window of days. Found by the share audit pass, never enforced as a
// hard constraint.
type ShareViolation struct {
	CityRef
	WindowStart time.Time       `json:"window_start"`
	WindowEnd   time.Time       `json:"window_end"`
	ShareSum    decimal.Decimal `json:"share_sum"`
}

// PostalCityMapping resolves a raw (postal code, state code) pair to a city.
type PostalCityMapping struct {
	ID         int    `json:"id"`
	PostalCode string `json:"postal_code"`
	CityName   string `json:"city_name"`
	StateCode  string `json:"state_code"`
	CityID     *int   `json:"city_id"`
}
