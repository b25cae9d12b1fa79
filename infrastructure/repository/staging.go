package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

const stagingTable = "stg_shopify_daily_city"

// StagingRepository owns stg_shopify_daily_city. Rows are keyed purely by
// natural business keys; the nullable dimension ids get backfilled by the
// reconciliation pass, inside a deferred-constraint transaction.
type StagingRepository interface {
	UpsertRows(ctx context.Context, rows []domain.StagingShopifyRow) (int, error)
	ListPending(ctx context.Context, limit int) ([]domain.StagingShopifyRow, error)
	MarkStatus(ctx context.Context, keys []domain.StagingKey, status domain.ResolutionStatus) error
	BackfillResolution(ctx context.Context, row *domain.StagingShopifyRow) error
}

type stagingRepository struct {
	conn postgres.Queryer
}

// NewStagingRepository accepts either a live connection or an open
// transaction, matching the dimension repository.
func NewStagingRepository(conn postgres.Queryer) StagingRepository {
	return &stagingRepository{conn: conn}
}

// UpsertRows inserts a batch of raw rows. Re-ingesting a natural key
// refreshes its measures and provenance and resets it for reconciliation, so
// ingestion is idempotent per (date, account, geo) key.
func (r *stagingRepository) UpsertRows(ctx context.Context, rows []domain.StagingShopifyRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	rows = dedupeByKey(rows)

	builder := squirrel.
		Insert(stagingTable).
		Columns("date_id", "platform_id", "account_id", "country_iso2", "region_code", "city_name_norm",
			"orders", "gross_sales", "refunds", "shipping", "resolution_status", "_source_file")

	for _, row := range rows {
		builder = builder.Values(
			row.Date.Format(dateLayout),
			row.PlatformID,
			row.AccountID,
			row.CountryISO2,
			row.RegionCode,
			row.CityName,
			row.Orders,
			row.GrossSales,
			row.Refunds,
			row.Shipping,
			string(domain.ResolutionUnresolved),
			row.SourceFile,
		)
	}

	query, args, err := builder.
		Suffix(`
			ON CONFLICT ON CONSTRAINT stg_shopify_daily_city_pk DO UPDATE SET
				orders = EXCLUDED.orders,
				gross_sales = EXCLUDED.gross_sales,
				refunds = EXCLUDED.refunds,
				shipping = EXCLUDED.shipping,
				resolution_status = EXCLUDED.resolution_status,
				_source_file = EXCLUDED._source_file,
				_ingested_at = now()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return 0, translateError("upsert staging rows", err)
	}

	return len(rows), nil
}

// dedupeByKey collapses rows sharing a natural key to their last occurrence.
// A single INSERT may not touch the same row twice, so duplicates within one
// batch would abort the whole statement.
func dedupeByKey(rows []domain.StagingShopifyRow) []domain.StagingShopifyRow {
	type naturalKey struct {
		date      string
		accountID int
		country   string
		region    string
		city      string
	}

	deduped := make([]domain.StagingShopifyRow, 0, len(rows))
	seen := make(map[naturalKey]int, len(rows))

	for _, row := range rows {
		key := naturalKey{
			date:      row.Date.Format(dateLayout),
			accountID: row.AccountID,
			country:   row.CountryISO2,
			region:    row.RegionCode,
			city:      row.CityName,
		}
		if i, ok := seen[key]; ok {
			deduped[i] = row
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, row)
	}

	return deduped
}

// ListPending returns rows still waiting for resolution, oldest ingests
// first. PARTIAL rows are retried: a dimension missing on the last pass may
// exist now.
func (r *stagingRepository) ListPending(ctx context.Context, limit int) ([]domain.StagingShopifyRow, error) {
	builder := squirrel.
		Select("date_id", "platform_id", "account_id", "country_iso2", "region_code", "city_name_norm",
			"country_id", "region_id", "city_id", "attribution_id",
			"orders", "gross_sales", "refunds", "shipping",
			"_ingested_at", "_source_file", "resolution_status").
		From(stagingTable).
		Where(squirrel.Eq{"resolution_status": []string{
			string(domain.ResolutionUnresolved),
			string(domain.ResolutionPartial),
		}}).
		OrderBy("_ingested_at ASC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("list pending staging rows", err)
	}
	defer rows.Close()

	pending := make([]domain.StagingShopifyRow, 0)
	for rows.Next() {
		var row domain.StagingShopifyRow
		if err := rows.Scan(
			&row.Date,
			&row.PlatformID,
			&row.AccountID,
			&row.CountryISO2,
			&row.RegionCode,
			&row.CityName,
			&row.CountryID,
			&row.RegionID,
			&row.CityID,
			&row.AttributionID,
			&row.Orders,
			&row.GrossSales,
			&row.Refunds,
			&row.Shipping,
			&row.IngestedAt,
			&row.SourceFile,
			&row.Status,
		); err != nil {
			return nil, translateError("list pending staging rows", err)
		}
		pending = append(pending, row)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("list pending staging rows", err)
	}

	return pending, nil
}

func (r *stagingRepository) MarkStatus(ctx context.Context, keys []domain.StagingKey, status domain.ResolutionStatus) error {
	for _, key := range keys {
		query, args, err := squirrel.
			Update(stagingTable).
			Set("resolution_status", string(status)).
			Where(keyPredicate(key)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
			return translateError("mark staging status", err)
		}
	}

	return nil
}

// BackfillResolution writes the resolved dimension ids and final status back
// onto the row identified by its natural key.
func (r *stagingRepository) BackfillResolution(ctx context.Context, row *domain.StagingShopifyRow) error {
	query, args, err := squirrel.
		Update(stagingTable).
		Set("country_id", row.CountryID).
		Set("region_id", row.RegionID).
		Set("city_id", row.CityID).
		Set("attribution_id", row.AttributionID).
		Set("resolution_status", string(row.Status)).
		Where(keyPredicate(row.Key())).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return translateError("backfill staging resolution", err)
	}

	return nil
}

func keyPredicate(key domain.StagingKey) squirrel.Eq {
	return squirrel.Eq{
		"date_id":        key.Date.Format(dateLayout),
		"account_id":     key.AccountID,
		"country_iso2":   key.CountryISO2,
		"region_code":    key.RegionCode,
		"city_name_norm": key.CityName,
	}
}
