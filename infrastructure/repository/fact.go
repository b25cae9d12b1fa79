package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

const (
	marketingFactsTable = "fact_marketing_daily"
	shopifyFactsTable   = "fact_shopify_daily"
	modelResultsTable   = "fact_model_results"
)

// FactRepository appends measurement rows. Marketing and Shopify facts are
// append-only; model results upsert on ux_model_result. Referential checks
// are the database's FK constraints, surfaced through the error taxonomy.
type FactRepository interface {
	AppendMarketingFact(ctx context.Context, f *domain.MarketingDailyFact) (int64, error)
	AppendShopifyFact(ctx context.Context, f *domain.ShopifyDailyFact) (int64, error)
	UpsertModelResult(ctx context.Context, r *domain.ModelResult) (int, error)
}

type factRepository struct {
	conn postgres.Queryer
}

func NewFactRepository(conn postgres.Queryer) FactRepository {
	return &factRepository{conn: conn}
}

func (r *factRepository) AppendMarketingFact(ctx context.Context, f *domain.MarketingDailyFact) (int64, error) {
	query, args, err := squirrel.
		Insert(marketingFactsTable).
		Columns(
			"platform_id", "account_id", "campaign_id", "adset_id", "ad_id", "date_id",
			"attribution_id", "country_id", "region_id", "dma_id", "currency_code",
			"spend", "impressions", "clicks", "conversions", "conversion_value",
			"video_view_time", "frequency", "reach", "add_to_cart",
		).
		Values(
			f.PlatformID, f.AccountID, f.CampaignID, f.AdsetID, f.AdID, f.DateID,
			f.AttributionID, f.CountryID, f.RegionID, f.DMAID, f.CurrencyCode,
			f.Spend, f.Impressions, f.Clicks, f.Conversions, f.ConversionVal,
			f.VideoViewTime, f.Frequency, f.Reach, f.AddToCart,
		).
		Suffix("RETURNING fact_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var factID int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&factID); err != nil {
		return 0, translateError("append marketing fact", err)
	}

	return factID, nil
}

func (r *factRepository) AppendShopifyFact(ctx context.Context, f *domain.ShopifyDailyFact) (int64, error) {
	query, args, err := squirrel.
		Insert(shopifyFactsTable).
		Columns("date_id", "country_id", "region_id", "city_id", "postal_id",
			"currency_code", "sessions", "orders", "revenue", "add_to_cart").
		Values(f.DateID, f.CountryID, f.RegionID, f.CityID, f.PostalID,
			f.CurrencyCode, f.Sessions, f.Orders, f.Revenue, f.AddToCart).
		Suffix("RETURNING fact_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var factID int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&factID); err != nil {
		return 0, translateError("append shopify fact", err)
	}

	return factID, nil
}

// UpsertModelResult replaces any prior row with the same (model_name,
// model_version, platform_id, dma_id, date_id): last write wins, with the run
// timestamp refreshed. Under Postgres NULL semantics ux_model_result never
// matches rows whose platform_id, dma_id or date_id is NULL, so re-running a
// national-level model appends a new row instead of replacing the old one.
func (r *factRepository) UpsertModelResult(ctx context.Context, m *domain.ModelResult) (int, error) {
	query, args, err := squirrel.
		Insert(modelResultsTable).
		Columns("model_name", "model_version", "platform_id", "dma_id", "date_id",
			"predicted_sales", "attributed_sales", "effect_size",
			"confidence_interval", "feature_importances").
		Values(m.ModelName, m.ModelVersion, m.PlatformID, m.DMAID, m.DateID,
			m.PredictedSales, m.AttributedSales, m.EffectSize,
			nullableJSON(m.ConfidenceInterval), nullableJSON(m.FeatureImportances)).
		Suffix(`
			ON CONFLICT ON CONSTRAINT ux_model_result DO UPDATE SET
				run_timestamp = now(),
				predicted_sales = EXCLUDED.predicted_sales,
				attributed_sales = EXCLUDED.attributed_sales,
				effect_size = EXCLUDED.effect_size,
				confidence_interval = EXCLUDED.confidence_interval,
				feature_importances = EXCLUDED.feature_importances
			RETURNING model_run_id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var runID int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&runID); err != nil {
		return 0, translateError("upsert model result", err)
	}

	return runID, nil
}

func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
