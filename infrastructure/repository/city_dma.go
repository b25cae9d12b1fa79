package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

const (
	cityDMATable    = "map_city_dma"
	postalCityTable = "map_postal_city_state"
	dateLayout      = "2006-01-02"
)

// CityDMARepository owns the slowly-changing city→DMA mapping windows. All
// window edits run in a transaction with the city's rows locked, so the
// non-overlap invariant is enforced at write time.
type CityDMARepository interface {
	ActiveMappings(ctx context.Context, ref domain.CityRef, asOf time.Time) ([]domain.DMAShareResult, error)
	WindowsForCity(ctx context.Context, ref domain.CityRef) ([]domain.CityDMAMapping, error)
	ListWindows(ctx context.Context) ([]domain.CityDMAMapping, error)
	InsertMapping(ctx context.Context, m domain.CityDMAMapping) error
	RemapCity(ctx context.Context, ref domain.CityRef, newDMAID int, share decimal.Decimal, effective time.Time) error

	GetPostalMapping(ctx context.Context, postalCode, stateCode string) (*domain.PostalCityMapping, error)
	CreatePostalMapping(ctx context.Context, m *domain.PostalCityMapping) (int, error)
	BackfillPostalCityID(ctx context.Context, id, cityID int) error
}

type cityDMARepository struct {
	conn *postgres.Connection
}

func NewCityDMARepository(conn *postgres.Connection) CityDMARepository {
	return &cityDMARepository{conn: conn}
}

// ActiveMappings returns the (DMA, share) pairs whose windows cover asOf,
// start inclusive and end exclusive. An unmapped city yields an empty slice,
// never an error: callers treat it as unattributed.
func (r *cityDMARepository) ActiveMappings(ctx context.Context, ref domain.CityRef, asOf time.Time) ([]domain.DMAShareResult, error) {
	query, args, err := squirrel.
		Select("m.dma_id", "d.dma_code", "m.dma_share").
		From(cityDMATable + " m").
		Join(dmasTable + " d ON d.dma_id = m.dma_id").
		Where(squirrel.Eq{"m.country_id": ref.CountryID, "m.region_id": ref.RegionID, "m.city_id": ref.CityID}).
		Where(squirrel.LtOrEq{"m.effective_start_date": asOf.Format(dateLayout)}).
		Where(squirrel.Gt{"m.effective_end_date": asOf.Format(dateLayout)}).
		OrderBy("m.dma_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("resolve dma", err)
	}
	defer rows.Close()

	results := make([]domain.DMAShareResult, 0)
	for rows.Next() {
		var res domain.DMAShareResult
		if err := rows.Scan(&res.DMAID, &res.DMACode, &res.Share); err != nil {
			return nil, translateError("resolve dma", err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("resolve dma", err)
	}

	return results, nil
}

func (r *cityDMARepository) WindowsForCity(ctx context.Context, ref domain.CityRef) ([]domain.CityDMAMapping, error) {
	return r.queryWindows(ctx, r.conn, squirrel.Eq{
		"country_id": ref.CountryID,
		"region_id":  ref.RegionID,
		"city_id":    ref.CityID,
	}, false)
}

// ListWindows returns every mapping window, ordered by city then start date.
// Used by the share audit pass.
func (r *cityDMARepository) ListWindows(ctx context.Context) ([]domain.CityDMAMapping, error) {
	return r.queryWindows(ctx, r.conn, nil, false)
}

// InsertMapping adds a window after locking the city's existing windows and
// rejecting any range overlap.
func (r *cityDMARepository) InsertMapping(ctx context.Context, m domain.CityDMAMapping) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		existing, err := r.queryWindowsTx(ctx, tx, m.CityRef)
		if err != nil {
			return err
		}

		for _, w := range existing {
			if w.Overlaps(m.EffectiveStartDate, m.EffectiveEndDate) {
				return domain.NewWarehouseError(cityDMATable, domain.ErrConflict,
					fmt.Sprintf("window [%s, %s) overlaps existing window [%s, %s) for dma %d",
						m.EffectiveStartDate.Format(dateLayout), m.EffectiveEndDate.Format(dateLayout),
						w.EffectiveStartDate.Format(dateLayout), w.EffectiveEndDate.Format(dateLayout), w.DMAID))
			}
		}

		return r.insertWindow(ctx, tx, m)
	})
}

// RemapCity closes the city's currently-open window at the effective date and
// opens a new one for the target DMA, atomically. A crash or failure before
// commit leaves the prior state untouched.
func (r *cityDMARepository) RemapCity(ctx context.Context, ref domain.CityRef, newDMAID int, share decimal.Decimal, effective time.Time) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		windows, err := r.queryWindowsTx(ctx, tx, ref)
		if err != nil {
			return err
		}

		var open []domain.CityDMAMapping
		for _, w := range windows {
			if w.IsOpen() {
				open = append(open, w)
			}
		}

		if len(open) == 0 {
			return domain.NewWarehouseError(cityDMATable, domain.ErrNotFound, "city has no open mapping window")
		}
		if len(open) > 1 {
			return domain.NewWarehouseError(cityDMATable, domain.ErrValidation,
				"city splits across multiple open windows; close them individually before remapping")
		}

		current := open[0]
		if !effective.After(current.EffectiveStartDate) {
			return domain.NewWarehouseError(cityDMATable, domain.ErrValidation,
				fmt.Sprintf("effective date %s does not follow open window start %s",
					effective.Format(dateLayout), current.EffectiveStartDate.Format(dateLayout)))
		}

		closeSQL, closeArgs, err := squirrel.
			Update(cityDMATable).
			Set("effective_end_date", effective.Format(dateLayout)).
			Where(squirrel.Eq{
				"country_id":           ref.CountryID,
				"region_id":            ref.RegionID,
				"city_id":              ref.CityID,
				"dma_id":               current.DMAID,
				"effective_start_date": current.EffectiveStartDate.Format(dateLayout),
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, closeSQL, closeArgs...); err != nil {
			return translateError("close dma window", err)
		}

		return r.insertWindow(ctx, tx, domain.CityDMAMapping{
			CityRef:            ref,
			DMAID:              newDMAID,
			EffectiveStartDate: effective,
			EffectiveEndDate:   domain.FarFutureEndDate,
			DMAShare:           share,
		})
	})
}

func (r *cityDMARepository) insertWindow(ctx context.Context, q postgres.Queryer, m domain.CityDMAMapping) error {
	query, args, err := squirrel.
		Insert(cityDMATable).
		Columns("country_id", "region_id", "city_id", "dma_id", "effective_start_date", "effective_end_date", "dma_share").
		Values(
			m.CountryID,
			m.RegionID,
			m.CityID,
			m.DMAID,
			m.EffectiveStartDate.Format(dateLayout),
			m.EffectiveEndDate.Format(dateLayout),
			m.DMAShare,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return translateError("insert dma window", err)
	}

	return nil
}

// queryWindowsTx locks the city's windows for the duration of the caller's
// transaction, serializing concurrent window edits per city.
func (r *cityDMARepository) queryWindowsTx(ctx context.Context, tx *sql.Tx, ref domain.CityRef) ([]domain.CityDMAMapping, error) {
	return r.queryWindows(ctx, tx, squirrel.Eq{
		"country_id": ref.CountryID,
		"region_id":  ref.RegionID,
		"city_id":    ref.CityID,
	}, true)
}

func (r *cityDMARepository) queryWindows(ctx context.Context, q postgres.Queryer, where interface{}, forUpdate bool) ([]domain.CityDMAMapping, error) {
	builder := squirrel.
		Select("country_id", "region_id", "city_id", "dma_id", "effective_start_date", "effective_end_date", "dma_share").
		From(cityDMATable).
		OrderBy("country_id", "region_id", "city_id", "effective_start_date", "dma_id")

	if where != nil {
		builder = builder.Where(where)
	}
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("list dma windows", err)
	}
	defer rows.Close()

	windows := make([]domain.CityDMAMapping, 0)
	for rows.Next() {
		var w domain.CityDMAMapping
		if err := rows.Scan(
			&w.CountryID,
			&w.RegionID,
			&w.CityID,
			&w.DMAID,
			&w.EffectiveStartDate,
			&w.EffectiveEndDate,
			&w.DMAShare,
		); err != nil {
			return nil, translateError("list dma windows", err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("list dma windows", err)
	}

	return windows, nil
}

func (r *cityDMARepository) GetPostalMapping(ctx context.Context, postalCode, stateCode string) (*domain.PostalCityMapping, error) {
	query, args, err := squirrel.
		Select("id", "postal_code", "city_name", "state_code", "city_id").
		From(postalCityTable).
		Where(squirrel.Eq{"postal_code": postalCode, "state_code": stateCode}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m domain.PostalCityMapping
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.PostalCode, &m.CityName, &m.StateCode, &m.CityID)
	if err != nil {
		return nil, translateError("lookup postal mapping", err)
	}

	return &m, nil
}

func (r *cityDMARepository) CreatePostalMapping(ctx context.Context, m *domain.PostalCityMapping) (int, error) {
	query, args, err := squirrel.
		Insert(postalCityTable).
		Columns("postal_code", "city_name", "state_code", "city_id").
		Values(m.PostalCode, m.CityName, m.StateCode, m.CityID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, translateError("create postal mapping", err)
	}

	return id, nil
}

func (r *cityDMARepository) BackfillPostalCityID(ctx context.Context, id, cityID int) error {
	query, args, err := squirrel.
		Update(postalCityTable).
		Set("city_id", cityID).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return translateError("backfill postal city", err)
	}

	return nil
}
