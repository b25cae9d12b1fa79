package domain

import "time"

// Dimension entities are surrogate-keyed and immutable once created. They are
// created on first reference during reconciliation; deletion is not supported.

type Platform struct {
	ID   int    `json:"platform_id"`
	Name string `json:"name"`
}

type Account struct {
	ID         int     `json:"account_id"`
	PlatformID int     `json:"platform_id"`
	ExternalID *string `json:"external_account_id"`
	Name       *string `json:"account_name"`
}

type Campaign struct {
	ID         int     `json:"campaign_id"`
	AccountID  int     `json:"account_id"`
	ExternalID *string `json:"external_campaign_id"`
	Name       *string `json:"campaign_name"`
}

// Adset covers both Meta ad sets and Google ad groups, hence the table name
// dim_adset_or_adgroup.
type Adset struct {
	ID         int     `json:"adset_id"`
	CampaignID int     `json:"campaign_id"`
	ExternalID *string `json:"external_adset_id"`
	Name       *string `json:"adset_name"`
}

type Ad struct {
	ID         int     `json:"ad_id"`
	AdsetID    int     `json:"adset_id"`
	ExternalID *string `json:"external_ad_id"`
	Name       *string `json:"ad_name"`
}

// Attribution describes a platform measurement window policy, e.g. "7d_click".
type Attribution struct {
	ID          int     `json:"attribution_id"`
	PlatformID  int     `json:"platform_id"`
	WindowType  string  `json:"window_type"`
	Description *string `json:"description"`
}

type Country struct {
	ID   int    `json:"country_id"`
	ISO2 string `json:"iso2"`
	Name string `json:"country_name"`
}

type Region struct {
	ID             int     `json:"region_id"`
	CountryID      int     `json:"country_id"`
	Name           string  `json:"region_name"`
	ISOSubdivision *string `json:"iso_subdivision"`
}

type City struct {
	ID       int    `json:"city_id"`
	RegionID int    `json:"region_id"`
	Name     string `json:"city_name"`
}

type Postal struct {
	ID     int    `json:"postal_id"`
	CityID int    `json:"city_id"`
	Code   string `json:"postal_code"`
}

// DMA is a Designated Market Area, a media-market unit independent of the
// country/region/city hierarchy.
type DMA struct {
	ID   int    `json:"dma_id"`
	Code string `json:"dma_code"`
	Name string `json:"dma_name"`
}

// PlatformDMALabel maps a platform ad-targeting label string to a canonical
// DMA. Labels are scoped per platform; the same text may mean different
// things on different platforms.
type PlatformDMALabel struct {
	ID         int    `json:"id"`
	PlatformID int    `json:"platform_id"`
	Label      string `json:"platform_dma_label"`
	DMAID      int    `json:"dma_id"`
}

// CalendarDate is one precomputed row per day in dim_date. Facts can only
// reference dates present in the table; the range must be populated up front.
type CalendarDate struct {
	DateID  int       `json:"date_id"`
	Actual  time.Time `json:"date_actual"`
	Week    int       `json:"week"`
	Month   int       `json:"month"`
	Quarter int       `json:"quarter"`
	Year    int       `json:"year"`
}

// MetricAvailability is a capability matrix row: whether a metric can be
// obtained from a platform at a given location level. Consulted before
// querying a platform for a metric it cannot provide.
type MetricAvailability struct {
	ID            int    `json:"id"`
	PlatformID    int    `json:"platform_id"`
	LocationLevel string `json:"location_level"`
	MetricName    string `json:"metric_name"`
	IsAvailable   bool   `json:"is_available"`
}
