package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-warehouse-api/internal/scheduler"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

const (
	CronJobTypeReconciliation = "reconciliation"
	CronJobTypeShareAudit     = "share-audit"
	CronJobTypeAll            = "all"
)

// CronJobServices holds the schedulers exposed for manual runs.
type CronJobServices struct {
	ReconciliationSyncService *scheduler.ReconciliationSyncService
	DMAShareAuditService      *scheduler.DMAShareAuditService
}

// RunCronJob triggers a scheduled job outside its cron window.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeReconciliation:
			if services.ReconciliationSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "reconciliation sync service unavailable", nil)
				return
			}
			services.ReconciliationSyncService.TriggerManualSync()

		case CronJobTypeShareAudit:
			if services.DMAShareAuditService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "dma share audit service unavailable", nil)
				return
			}
			services.DMAShareAuditService.TriggerManualAudit()

		case CronJobTypeAll:
			if services.ReconciliationSyncService != nil {
				services.ReconciliationSyncService.TriggerManualSync()
			}
			if services.DMAShareAuditService != nil {
				services.DMAShareAuditService.TriggerManualAudit()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"invalid cron job type, accepted values: reconciliation, share-audit, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron job triggered manually")

		json.NewEncoder(w).Encode(map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus reports the state of every scheduler.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"reconciliation": services.ReconciliationSyncService.GetStatus(),
			"share-audit":    services.DMAShareAuditService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
