package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

const metricAvailabilityTable = "metric_availability"

// MetricAvailabilityRepository stores the per-platform capability matrix:
// which metrics a platform can report at which location level.
type MetricAvailabilityRepository interface {
	Set(ctx context.Context, m *domain.MetricAvailability) error
	Get(ctx context.Context, platformID int, locationLevel, metricName string) (*domain.MetricAvailability, error)
	ListByPlatform(ctx context.Context, platformID int) ([]domain.MetricAvailability, error)
}

type metricAvailabilityRepository struct {
	conn postgres.Queryer
}

func NewMetricAvailabilityRepository(conn postgres.Queryer) MetricAvailabilityRepository {
	return &metricAvailabilityRepository{conn: conn}
}

// Set upserts a capability row on its (platform, level, metric) key.
func (r *metricAvailabilityRepository) Set(ctx context.Context, m *domain.MetricAvailability) error {
	query, args, err := squirrel.
		Insert(metricAvailabilityTable).
		Columns("platform_id", "location_level", "metric_name", "is_available").
		Values(m.PlatformID, m.LocationLevel, m.MetricName, m.IsAvailable).
		Suffix(`
			ON CONFLICT ON CONSTRAINT metric_availability_platform_level_metric_key DO UPDATE SET
				is_available = EXCLUDED.is_available
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&m.ID); err != nil {
		return translateError("set metric availability", err)
	}

	return nil
}

func (r *metricAvailabilityRepository) Get(ctx context.Context, platformID int, locationLevel, metricName string) (*domain.MetricAvailability, error) {
	query, args, err := squirrel.
		Select("id", "platform_id", "location_level", "metric_name", "is_available").
		From(metricAvailabilityTable).
		Where(squirrel.Eq{
			"platform_id":    platformID,
			"location_level": locationLevel,
			"metric_name":    metricName,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m domain.MetricAvailability
	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&m.ID, &m.PlatformID, &m.LocationLevel, &m.MetricName, &m.IsAvailable)
	if err != nil {
		return nil, translateError("get metric availability", err)
	}

	return &m, nil
}

func (r *metricAvailabilityRepository) ListByPlatform(ctx context.Context, platformID int) ([]domain.MetricAvailability, error) {
	query, args, err := squirrel.
		Select("id", "platform_id", "location_level", "metric_name", "is_available").
		From(metricAvailabilityTable).
		Where(squirrel.Eq{"platform_id": platformID}).
		OrderBy("location_level", "metric_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("list metric availability", err)
	}
	defer rows.Close()

	matrix := make([]domain.MetricAvailability, 0)
	for rows.Next() {
		var m domain.MetricAvailability
		if err := rows.Scan(&m.ID, &m.PlatformID, &m.LocationLevel, &m.MetricName, &m.IsAvailable); err != nil {
			return nil, translateError("list metric availability", err)
		}
		matrix = append(matrix, m)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("list metric availability", err)
	}

	return matrix, nil
}
