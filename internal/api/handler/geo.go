package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/geomapping"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
	"github.com/vfg2006/marketing-warehouse-api/pkg/utils"
)

type AddMappingRequest struct {
	CountryISO2 string          `json:"country_iso2"`
	RegionName  string          `json:"region_name"`
	CityName    string          `json:"city_name"`
	DMACode     string          `json:"dma_code"`
	DMAName     string          `json:"dma_name"`
	Share       decimal.Decimal `json:"dma_share"`
	StartDate   string          `json:"effective_start_date"`
	EndDate     string          `json:"effective_end_date"`
}

type RemapCityRequest struct {
	CountryISO2   string          `json:"country_iso2"`
	RegionName    string          `json:"region_name"`
	CityName      string          `json:"city_name"`
	DMACode       string          `json:"dma_code"`
	Share         decimal.Decimal `json:"dma_share"`
	EffectiveDate string          `json:"effective_date"`
}

// ResolveDMA answers which DMAs cover a city on a given day. The day defaults
// to today; an unmapped city returns an empty list, not a 404.
func ResolveDMA(service geomapping.GeoMapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		key := domain.CityNaturalKey{
			CountryISO2: query.Get("country_iso2"),
			RegionName:  query.Get("region_name"),
			CityName:    query.Get("city_name"),
		}
		if key.CountryISO2 == "" || key.RegionName == "" || key.CityName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"country_iso2, region_name and city_name are required", nil)
			return
		}

		asOf := time.Now()
		if dateStr := query.Get("date"); dateStr != "" {
			parsed, err := utils.ParseDate(dateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
				return
			}
			asOf = *parsed
		}

		results, err := service.ResolveDMA(r.Context(), key, asOf)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"date":     asOf.Format("2006-01-02"),
			"mappings": results,
		})
	}
}

// AddDMAMapping opens a new mapping window for a city.
func AddDMAMapping(service geomapping.GeoMapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddMappingRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		start, err := utils.ParseDate(req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "effective_start_date must be YYYY-MM-DD", nil)
			return
		}
		end, err := utils.ParseDate(req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "effective_end_date must be YYYY-MM-DD", nil)
			return
		}

		key := domain.CityNaturalKey{
			CountryISO2: req.CountryISO2,
			RegionName:  req.RegionName,
			CityName:    req.CityName,
		}

		err = service.AddMapping(r.Context(), key, req.DMACode, req.DMAName, req.Share, *start, *end)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

// RemapCity closes the city's open window and opens a new one atomically.
func RemapCity(service geomapping.GeoMapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RemapCityRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		effective, err := utils.ParseDate(req.EffectiveDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "effective_date must be YYYY-MM-DD", nil)
			return
		}

		key := domain.CityNaturalKey{
			CountryISO2: req.CountryISO2,
			RegionName:  req.RegionName,
			CityName:    req.CityName,
		}

		err = service.RemapCity(r.Context(), key, req.DMACode, req.Share, *effective)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// ResolvePostal answers which city a postal code belongs to within a state.
func ResolvePostal(service geomapping.GeoMapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		postalCode := query.Get("postal_code")
		stateCode := query.Get("state_code")
		if postalCode == "" || stateCode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"postal_code and state_code are required", nil)
			return
		}

		mapping, err := service.ResolvePostal(r.Context(), postalCode, stateCode)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mapping)
	}
}

// RegisterPostalMapping adds a postal-to-city resolution row.
func RegisterPostalMapping(service geomapping.GeoMapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PostalCityMapping

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		id, err := service.RegisterPostalMapping(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": id})
	}
}

// AuditDMAShares runs the share sweep on demand and returns the violations.
func AuditDMAShares(service geomapping.GeoMapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		violations, err := service.AuditShares(r.Context())
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"violations": violations,
		})
	}
}
