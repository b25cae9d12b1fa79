package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

const ingestionLogTable = "event_ingestion_log"

// IngestionLogRepository appends audit rows for ingestion and reconciliation
// runs. The log is append-only.
type IngestionLogRepository interface {
	Append(ctx context.Context, entry *domain.IngestionLogEntry) (int64, error)
	List(ctx context.Context, limit int) ([]domain.IngestionLogEntry, error)
}

type ingestionLogRepository struct {
	conn postgres.Queryer
}

func NewIngestionLogRepository(conn postgres.Queryer) IngestionLogRepository {
	return &ingestionLogRepository{conn: conn}
}

func (r *ingestionLogRepository) Append(ctx context.Context, entry *domain.IngestionLogEntry) (int64, error) {
	query, args, err := squirrel.
		Insert(ingestionLogTable).
		Columns("platform_id", "records_fetched", "status", "error_message", "duration_seconds").
		Values(entry.PlatformID, entry.RecordsFetched, entry.Status, entry.ErrorMessage, entry.DurationSecs).
		Suffix("RETURNING log_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var logID int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&logID); err != nil {
		return 0, translateError("append ingestion log", err)
	}

	return logID, nil
}

func (r *ingestionLogRepository) List(ctx context.Context, limit int) ([]domain.IngestionLogEntry, error) {
	builder := squirrel.
		Select("log_id", "platform_id", "sync_timestamp", "records_fetched", "status", "error_message", "duration_seconds").
		From(ingestionLogTable).
		OrderBy("sync_timestamp DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("list ingestion log", err)
	}
	defer rows.Close()

	entries := make([]domain.IngestionLogEntry, 0)
	for rows.Next() {
		var e domain.IngestionLogEntry
		if err := rows.Scan(&e.LogID, &e.PlatformID, &e.SyncTimestamp,
			&e.RecordsFetched, &e.Status, &e.ErrorMessage, &e.DurationSecs); err != nil {
			return nil, translateError("list ingestion log", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("list ingestion log", err)
	}

	return entries, nil
}
