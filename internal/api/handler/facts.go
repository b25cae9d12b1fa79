package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/facts"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// RecordMarketingFact appends one day of paid-media performance.
func RecordMarketingFact(service facts.FactRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req facts.MarketingFactRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		factID, err := service.RecordMarketingFact(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"fact_id": factID})
	}
}

// RecordShopifyFact appends one day of e-commerce performance.
func RecordShopifyFact(service facts.FactRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req facts.ShopifyFactRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		factID, err := service.RecordShopifyFact(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"fact_id": factID})
	}
}

// RecordModelResult upserts a model output row on its logical key.
func RecordModelResult(service facts.FactRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req facts.ModelResultRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		runID, err := service.RecordModelResult(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"model_run_id": runID})
	}
}
