package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResolutionStatus is the per-row reconciliation state machine.
type ResolutionStatus string

const (
	ResolutionUnresolved ResolutionStatus = "UNRESOLVED"
	ResolutionResolving  ResolutionStatus = "RESOLVING"
	ResolutionResolved   ResolutionStatus = "RESOLVED"
	ResolutionPartial    ResolutionStatus = "PARTIAL"
)

// StagingShopifyRow is a raw ingested row keyed by natural business keys
// (date, account, country iso2, region code, normalized city name). The
// nullable dimension ids are backfilled by the reconciliation pass; until
// resolved they stay nil. PlatformID and AccountID are resolved at ingest
// time inside the same deferred-constraint transaction that may create them.
type StagingShopifyRow struct {
	Date        time.Time `json:"date"`
	PlatformID  int       `json:"platform_id"`
	AccountID   int       `json:"account_id"`
	CountryISO2 string    `json:"country_iso2"`
	RegionCode  string    `json:"region_code"`
	CityName    string    `json:"city_name_norm"`

	CountryID     *int `json:"country_id"`
	RegionID      *int `json:"region_id"`
	CityID        *int `json:"city_id"`
	AttributionID *int `json:"attribution_id"`

	Orders     decimal.Decimal `json:"orders"`
	GrossSales decimal.Decimal `json:"gross_sales"`
	Refunds    decimal.Decimal `json:"refunds"`
	Shipping   decimal.Decimal `json:"shipping"`

	IngestedAt time.Time        `json:"_ingested_at"`
	SourceFile *string          `json:"_source_file"`
	Status     ResolutionStatus `json:"resolution_status"`
}

// Key returns the row's natural primary key fields, used for backfill
// targeting.
func (r StagingShopifyRow) Key() StagingKey {
	return StagingKey{
		Date:        r.Date,
		AccountID:   r.AccountID,
		CountryISO2: r.CountryISO2,
		RegionCode:  r.RegionCode,
		CityName:    r.CityName,
	}
}

// StagingKey is the natural primary key of stg_shopify_daily_city.
type StagingKey struct {
	Date        time.Time
	AccountID   int
	CountryISO2 string
	RegionCode  string
	CityName    string
}
