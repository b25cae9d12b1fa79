package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// MarketingDailyFact is one day of paid-media performance for a (platform,
// account, campaign, adset, ad, date, attribution) combination. The geo
// breakdown is optional and only present for sub-campaign granularity.
// Append-only: the base schema declares no natural-key uniqueness, so
// re-ingestion appends and deduplication is left to readers.
type MarketingDailyFact struct {
	FactID        int64            `json:"fact_id"`
	PlatformID    int              `json:"platform_id"`
	AccountID     int              `json:"account_id"`
	CampaignID    int              `json:"campaign_id"`
	AdsetID       int              `json:"adset_id"`
	AdID          int              `json:"ad_id"`
	DateID        int              `json:"date_id"`
	AttributionID *int             `json:"attribution_id"`
	CountryID     *int             `json:"country_id"`
	RegionID      *int             `json:"region_id"`
	DMAID         *int             `json:"dma_id"`
	CurrencyCode  *string          `json:"currency_code"`
	Spend         *decimal.Decimal `json:"spend"`
	Impressions   *int64           `json:"impressions"`
	Clicks        *int64           `json:"clicks"`
	Conversions   *int64           `json:"conversions"`
	ConversionVal *decimal.Decimal `json:"conversion_value"`
	VideoViewTime *int64           `json:"video_view_time"`
	Frequency     *decimal.Decimal `json:"frequency"`
	Reach         *int64           `json:"reach"`
	AddToCart     *int64           `json:"add_to_cart"`
}

// ShopifyDailyFact is one day of e-commerce performance at postal-code
// granularity. All five dimension references are required.
type ShopifyDailyFact struct {
	FactID       int64            `json:"fact_id"`
	DateID       int              `json:"date_id"`
	CountryID    int              `json:"country_id"`
	RegionID     int              `json:"region_id"`
	CityID       int              `json:"city_id"`
	PostalID     int              `json:"postal_id"`
	CurrencyCode *string          `json:"currency_code"`
	Sessions     *int64           `json:"sessions"`
	Orders       *int64           `json:"orders"`
	Revenue      *decimal.Decimal `json:"revenue"`
	AddToCart    *int64           `json:"add_to_cart"`
}

// ModelResult is one model-output row, unique on (model_name, model_version,
// platform_id, dma_id, date_id). Re-running a model for the same key replaces
// the prior result.
type ModelResult struct {
	ModelRunID         int              `json:"model_run_id"`
	ModelName          string           `json:"model_name"`
	ModelVersion       string           `json:"model_version"`
	RunTimestamp       time.Time        `json:"run_timestamp"`
	PlatformID         *int             `json:"platform_id"`
	DMAID              *int             `json:"dma_id"`
	DateID             *int             `json:"date_id"`
	PredictedSales     *decimal.Decimal `json:"predicted_sales"`
	AttributedSales    *decimal.Decimal `json:"attributed_sales"`
	EffectSize         *decimal.Decimal `json:"effect_size"`
	ConfidenceInterval json.RawMessage  `json:"confidence_interval,omitempty"`
	FeatureImportances json.RawMessage  `json:"feature_importances,omitempty"`
}
