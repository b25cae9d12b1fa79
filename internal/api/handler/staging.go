package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/reconciling"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// IngestStagingBatch lands a batch of raw Shopify city rows in staging.
func IngestStagingBatch(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reconciling.IngestBatchRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		summary, err := service.IngestBatch(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(summary)
	}
}

// RunReconciliation resolves pending staging rows on demand.
func RunReconciliation(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be numeric", nil)
				return
			}
			limit = parsed
		}

		summary, err := service.ReconcileBatch(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// ListIngestions returns the most recent ingestion log entries.
func ListIngestions(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be numeric", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.ListIngestionLog(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeWarehouseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"ingestions": entries,
		})
	}
}
