package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingestion run statuses recorded in event_ingestion_log.
const (
	IngestionStatusSuccess = "SUCCESS"
	IngestionStatusPartial = "PARTIAL"
	IngestionStatusFailed  = "FAILED"
)

// IngestionLogEntry is one append-only audit row per ingestion or
// reconciliation run.
type IngestionLogEntry struct {
	LogID          int64            `json:"log_id"`
	PlatformID     *int             `json:"platform_id"`
	SyncTimestamp  time.Time        `json:"sync_timestamp"`
	RecordsFetched int              `json:"records_fetched"`
	Status         string           `json:"status"`
	ErrorMessage   *string          `json:"error_message"`
	DurationSecs   *decimal.Decimal `json:"duration_seconds"`
}
