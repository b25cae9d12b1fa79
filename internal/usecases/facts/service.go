package facts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// MarketingFactRequest carries one day of paid-media performance keyed by the
// natural identifiers an ad platform export uses. Dimensions are created on
// first reference.
type MarketingFactRequest struct {
	Platform          string `json:"platform"`
	ExternalAccountID string `json:"external_account_id"`
	AccountName       string `json:"account_name"`
	ExternalCampaign  string `json:"external_campaign_id"`
	CampaignName      string `json:"campaign_name"`
	ExternalAdset     string `json:"external_adset_id"`
	AdsetName         string `json:"adset_name"`
	ExternalAd        string `json:"external_ad_id"`
	AdName            string `json:"ad_name"`

	Date              time.Time `json:"date"`
	AttributionWindow string    `json:"attribution_window"`
	CountryISO2       string    `json:"country_iso2"`
	RegionName        string    `json:"region_name"`
	CityName          string    `json:"city_name"`
	DMALabel          string    `json:"dma_label"`

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

// ShopifyFactRequest is one day of e-commerce performance at postal-code
// granularity. The whole geo chain is required.
type ShopifyFactRequest struct {
	Date        time.Time `json:"date"`
	CountryISO2 string    `json:"country_iso2"`
	CountryName string    `json:"country_name"`
	RegionName  string    `json:"region_name"`
	CityName    string    `json:"city_name"`
	PostalCode  string    `json:"postal_code"`

	CurrencyCode *string          `json:"currency_code"`
	Sessions     *int64           `json:"sessions"`
	Orders       *int64           `json:"orders"`
	Revenue      *decimal.Decimal `json:"revenue"`
	AddToCart    *int64           `json:"add_to_cart"`
}

// ModelResultRequest is one model-output row. Re-submitting the same
// (model, version, platform, dma, date) key replaces the prior result.
type ModelResultRequest struct {
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	Platform     string     `json:"platform"`
	DMACode      string     `json:"dma_code"`
	Date         *time.Time `json:"date"`

	PredictedSales     *decimal.Decimal `json:"predicted_sales"`
	AttributedSales    *decimal.Decimal `json:"attributed_sales"`
	EffectSize         *decimal.Decimal `json:"effect_size"`
	ConfidenceInterval json.RawMessage  `json:"confidence_interval,omitempty"`
	FeatureImportances json.RawMessage  `json:"feature_importances,omitempty"`
}

// FactRecorder resolves natural keys to dimension ids and writes fact rows.
type FactRecorder interface {
	RecordMarketingFact(ctx context.Context, req *MarketingFactRequest) (int64, error)
	RecordShopifyFact(ctx context.Context, req *ShopifyFactRequest) (int64, error)
	RecordModelResult(ctx context.Context, req *ModelResultRequest) (int, error)
}

type Service struct {
	dimensionRepo repository.DimensionRepository
	cityDMARepo   repository.CityDMARepository
	factRepo      repository.FactRepository
}

func NewService(
	dimensionRepo repository.DimensionRepository,
	cityDMARepo repository.CityDMARepository,
	factRepo repository.FactRepository,
) FactRecorder {
	return &Service{
		dimensionRepo: dimensionRepo,
		cityDMARepo:   cityDMARepo,
		factRepo:      factRepo,
	}
}

// RecordMarketingFact resolves the hierarchy platform > account > campaign >
// adset > ad, validates the date against the calendar, and appends the fact.
// The optional DMA comes from the platform's label registry; without a label,
// a full geo breakdown resolves through the city mapping windows active on
// the fact's date. Either path failing to match leaves dma_id null rather
// than failing the whole row.
func (s *Service) RecordMarketingFact(ctx context.Context, req *MarketingFactRequest) (int64, error) {
	if req.Date.IsZero() {
		return 0, domain.NewWarehouseError("record marketing fact", domain.ErrValidation, "date is required")
	}

	dateID, err := s.dimensionRepo.GetDateID(ctx, req.Date)
	if err != nil {
		return 0, err
	}

	platformID, err := s.dimensionRepo.GetOrCreatePlatform(ctx, req.Platform)
	if err != nil {
		return 0, err
	}
	accountID, err := s.dimensionRepo.GetOrCreateAccount(ctx, platformID, req.ExternalAccountID, req.AccountName)
	if err != nil {
		return 0, err
	}
	campaignID, err := s.dimensionRepo.GetOrCreateCampaign(ctx, accountID, req.ExternalCampaign, req.CampaignName)
	if err != nil {
		return 0, err
	}
	adsetID, err := s.dimensionRepo.GetOrCreateAdset(ctx, campaignID, req.ExternalAdset, req.AdsetName)
	if err != nil {
		return 0, err
	}
	adID, err := s.dimensionRepo.GetOrCreateAd(ctx, adsetID, req.ExternalAd, req.AdName)
	if err != nil {
		return 0, err
	}

	fact := &domain.MarketingDailyFact{
		PlatformID:    platformID,
		AccountID:     accountID,
		CampaignID:    campaignID,
		AdsetID:       adsetID,
		AdID:          adID,
		DateID:        dateID,
		CurrencyCode:  req.CurrencyCode,
		Spend:         req.Spend,
		Impressions:   req.Impressions,
		Clicks:        req.Clicks,
		Conversions:   req.Conversions,
		ConversionVal: req.ConversionVal,
		VideoViewTime: req.VideoViewTime,
		Frequency:     req.Frequency,
		Reach:         req.Reach,
		AddToCart:     req.AddToCart,
	}

	if req.AttributionWindow != "" {
		attributionID, err := s.dimensionRepo.GetOrCreateAttribution(ctx, platformID, req.AttributionWindow, "")
		if err != nil {
			return 0, err
		}
		fact.AttributionID = &attributionID
	}

	if req.CountryISO2 != "" {
		countryID, err := s.dimensionRepo.GetOrCreateCountry(ctx, req.CountryISO2, "")
		if err != nil {
			return 0, err
		}
		fact.CountryID = &countryID

		if req.RegionName != "" {
			regionID, err := s.dimensionRepo.GetOrCreateRegion(ctx, countryID, req.RegionName, "")
			if err != nil {
				return 0, err
			}
			fact.RegionID = &regionID
		}
	}

	if req.DMALabel != "" {
		dmaID, err := s.dimensionRepo.LookupDMAByPlatformLabel(ctx, platformID, req.DMALabel)
		switch {
		case err == nil:
			fact.DMAID = &dmaID
		case errors.Is(err, domain.ErrNotFound):
			log.ForContext(ctx).WithFields(log.Fields{
				"platform":  req.Platform,
				"dma_label": req.DMALabel,
			}).Warn("unregistered platform dma label, leaving fact unattributed")
		default:
			return 0, err
		}
	}

	if fact.DMAID == nil && req.CountryISO2 != "" && req.RegionName != "" && req.CityName != "" {
		if err := s.enrichDMAFromMapping(ctx, req, fact); err != nil {
			return 0, err
		}
	}

	return s.factRepo.AppendMarketingFact(ctx, fact)
}

// enrichDMAFromMapping resolves dma_id through the mapping windows active on
// the fact's own date, never the load date. Pure lookup: an unknown or
// unmapped city leaves the fact unattributed. A city split across DMAs
// attributes to the dominant share.
func (s *Service) enrichDMAFromMapping(ctx context.Context, req *MarketingFactRequest, fact *domain.MarketingDailyFact) error {
	ref, err := s.dimensionRepo.LookupCityRef(ctx, domain.CityNaturalKey{
		CountryISO2: req.CountryISO2,
		RegionName:  req.RegionName,
		CityName:    req.CityName,
	})
	if errors.Is(err, domain.ErrNotFound) {
		log.ForContext(ctx).WithFields(log.Fields{
			"country": req.CountryISO2,
			"region":  req.RegionName,
			"city":    req.CityName,
		}).Warn("unknown city, leaving fact unattributed")
		return nil
	}
	if err != nil {
		return err
	}

	mappings, err := s.cityDMARepo.ActiveMappings(ctx, ref, req.Date)
	if err != nil {
		return err
	}
	if len(mappings) == 0 {
		return nil
	}

	best := mappings[0]
	for _, m := range mappings[1:] {
		if m.Share.GreaterThan(best.Share) {
			best = m
		}
	}
	fact.DMAID = &best.DMAID

	return nil
}

// RecordShopifyFact resolves the full geo chain country > region > city >
// postal, creating entities on first reference, and appends the fact.
func (s *Service) RecordShopifyFact(ctx context.Context, req *ShopifyFactRequest) (int64, error) {
	if req.Date.IsZero() {
		return 0, domain.NewWarehouseError("record shopify fact", domain.ErrValidation, "date is required")
	}
	if req.CountryISO2 == "" || req.RegionName == "" || req.CityName == "" || req.PostalCode == "" {
		return 0, domain.NewWarehouseError("record shopify fact", domain.ErrValidation,
			"country_iso2, region_name, city_name and postal_code are required")
	}

	dateID, err := s.dimensionRepo.GetDateID(ctx, req.Date)
	if err != nil {
		return 0, err
	}

	countryID, err := s.dimensionRepo.GetOrCreateCountry(ctx, req.CountryISO2, req.CountryName)
	if err != nil {
		return 0, err
	}
	regionID, err := s.dimensionRepo.GetOrCreateRegion(ctx, countryID, req.RegionName, "")
	if err != nil {
		return 0, err
	}
	cityID, err := s.dimensionRepo.GetOrCreateCity(ctx, regionID, req.CityName)
	if err != nil {
		return 0, err
	}
	postalID, err := s.dimensionRepo.GetOrCreatePostal(ctx, cityID, req.PostalCode)
	if err != nil {
		return 0, err
	}

	return s.factRepo.AppendShopifyFact(ctx, &domain.ShopifyDailyFact{
		DateID:       dateID,
		CountryID:    countryID,
		RegionID:     regionID,
		CityID:       cityID,
		PostalID:     postalID,
		CurrencyCode: req.CurrencyCode,
		Sessions:     req.Sessions,
		Orders:       req.Orders,
		Revenue:      req.Revenue,
		AddToCart:    req.AddToCart,
	})
}

// RecordModelResult upserts a model output row on its logical key. Platform,
// DMA and date are optional; a model may publish national-level results.
func (s *Service) RecordModelResult(ctx context.Context, req *ModelResultRequest) (int, error) {
	if req.ModelName == "" || req.ModelVersion == "" {
		return 0, domain.NewWarehouseError("record model result", domain.ErrValidation,
			"model_name and model_version are required")
	}

	result := &domain.ModelResult{
		ModelName:          req.ModelName,
		ModelVersion:       req.ModelVersion,
		PredictedSales:     req.PredictedSales,
		AttributedSales:    req.AttributedSales,
		EffectSize:         req.EffectSize,
		ConfidenceInterval: req.ConfidenceInterval,
		FeatureImportances: req.FeatureImportances,
	}

	if req.Platform != "" {
		platformID, err := s.dimensionRepo.GetOrCreatePlatform(ctx, req.Platform)
		if err != nil {
			return 0, err
		}
		result.PlatformID = &platformID
	}

	if req.DMACode != "" {
		dmaID, err := s.dimensionRepo.GetOrCreateDMA(ctx, req.DMACode, "")
		if err != nil {
			return 0, err
		}
		result.DMAID = &dmaID
	}

	if req.Date != nil {
		dateID, err := s.dimensionRepo.GetDateID(ctx, *req.Date)
		if err != nil {
			return 0, err
		}
		result.DateID = &dateID
	}

	return s.factRepo.UpsertModelResult(ctx, result)
}
