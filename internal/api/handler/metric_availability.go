package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/dimensioning"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// SetMetricAvailability upserts one capability matrix row.
func SetMetricAvailability(service dimensioning.Dimensioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MetricAvailability

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		if err := service.SetMetricAvailability(r.Context(), &req); err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(req)
	}
}

// ListMetricAvailability returns the capability matrix for one platform.
func ListMetricAvailability(service dimensioning.Dimensioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platformIDStr := r.URL.Query().Get("platform_id")
		if platformIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "platform_id is required", nil)
			return
		}

		platformID, err := strconv.Atoi(platformIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "platform_id must be numeric", nil)
			return
		}

		matrix, err := service.ListMetricAvailability(r.Context(), platformID)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"availability": matrix,
		})
	}
}

// RegisterDMALabel binds a platform targeting label to a canonical DMA.
func RegisterDMALabel(service dimensioning.Dimensioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Platform string `json:"platform"`
			Label    string `json:"platform_dma_label"`
			DMACode  string `json:"dma_code"`
			DMAName  string `json:"dma_name"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		if req.Platform == "" || req.Label == "" || req.DMACode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"platform, platform_dma_label and dma_code are required", nil)
			return
		}

		id, err := service.RegisterDMALabel(r.Context(), req.Platform, req.Label, req.DMACode, req.DMAName)
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

// PopulateCalendar fills dim_date for an inclusive date range.
func PopulateCalendar(service dimensioning.Dimensioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			From string `json:"from"`
			To   string `json:"to"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		from, err := parseRequiredDate(req.From)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from must be YYYY-MM-DD", nil)
			return
		}
		to, err := parseRequiredDate(req.To)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "to must be YYYY-MM-DD", nil)
			return
		}

		days, err := service.PopulateCalendar(r.Context(), from, to)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"days": days})
	}
}
