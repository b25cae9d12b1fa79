package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

const (
	platformsTable    = "dim_platform"
	accountsTable     = "dim_account"
	campaignsTable    = "dim_campaign"
	adsetsTable       = "dim_adset_or_adgroup"
	adsTable          = "dim_ad"
	attributionsTable = "dim_attribution"
	countriesTable    = "dim_country"
	regionsTable      = "dim_region"
	citiesTable       = "dim_city"
	postalsTable      = "dim_postal"
	datesTable        = "dim_date"
	dmasTable         = "dim_dma"
	platformDMATable  = "map_platform_dma"
)

// DimensionRepository is the dimension store: getOrCreate by natural key,
// safe under concurrent reconciliation batches. On an insert race the loser
// re-reads and returns the winner's id.
type DimensionRepository interface {
	GetOrCreatePlatform(ctx context.Context, name string) (int, error)
	GetOrCreateAccount(ctx context.Context, platformID int, externalID, name string) (int, error)
	GetOrCreateCampaign(ctx context.Context, accountID int, externalID, name string) (int, error)
	GetOrCreateAdset(ctx context.Context, campaignID int, externalID, name string) (int, error)
	GetOrCreateAd(ctx context.Context, adsetID int, externalID, name string) (int, error)
	GetOrCreateAttribution(ctx context.Context, platformID int, windowType, description string) (int, error)
	GetOrCreateCountry(ctx context.Context, iso2, name string) (int, error)
	GetOrCreateRegion(ctx context.Context, countryID int, name, isoSubdivision string) (int, error)
	GetOrCreateCity(ctx context.Context, regionID int, name string) (int, error)
	GetOrCreatePostal(ctx context.Context, cityID int, code string) (int, error)
	GetOrCreateDMA(ctx context.Context, code, name string) (int, error)
	GetOrCreatePlatformDMALabel(ctx context.Context, platformID int, label string, dmaID int) (int, error)

	LookupCityRef(ctx context.Context, key domain.CityNaturalKey) (domain.CityRef, error)
	LookupDMAByPlatformLabel(ctx context.Context, platformID int, label string) (int, error)

	GetDateID(ctx context.Context, day time.Time) (int, error)
	PopulateCalendar(ctx context.Context, from, to time.Time) (int, error)
}

type dimensionRepository struct {
	conn postgres.Queryer
}

// NewDimensionRepository accepts either a live connection or an open
// transaction, so reconciliation can create dimensions inside its own
// deferred-constraint transaction.
func NewDimensionRepository(conn postgres.Queryer) DimensionRepository {
	return &dimensionRepository{conn: conn}
}

func (r *dimensionRepository) GetOrCreatePlatform(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, domain.NewWarehouseError(platformsTable, domain.ErrValidation, "platform name is required")
	}

	return r.getOrCreate(ctx, platformsTable,
		squirrel.Select("platform_id").From(platformsTable).Where(squirrel.Eq{"name": name}),
		squirrel.Insert(platformsTable).
			Columns("name").
			Values(name).
			Suffix("ON CONFLICT ON CONSTRAINT dim_platform_name_key DO NOTHING RETURNING platform_id"),
	)
}

func (r *dimensionRepository) GetOrCreateAccount(ctx context.Context, platformID int, externalID, name string) (int, error) {
	if externalID == "" {
		return 0, domain.NewWarehouseError(accountsTable, domain.ErrValidation, "external account id is required")
	}

	return r.getOrCreate(ctx, accountsTable,
		squirrel.Select("account_id").From(accountsTable).
			Where(squirrel.Eq{"platform_id": platformID, "external_account_id": externalID}),
		squirrel.Insert(accountsTable).
			Columns("platform_id", "external_account_id", "account_name").
			Values(platformID, externalID, nullableString(name)).
			Suffix("ON CONFLICT ON CONSTRAINT dim_account_platform_external_key DO NOTHING RETURNING account_id"),
	)
}

func (r *dimensionRepository) GetOrCreateCampaign(ctx context.Context, accountID int, externalID, name string) (int, error) {
	if externalID == "" {
		return 0, domain.NewWarehouseError(campaignsTable, domain.ErrValidation, "external campaign id is required")
	}

	return r.getOrCreate(ctx, campaignsTable,
		squirrel.Select("campaign_id").From(campaignsTable).
			Where(squirrel.Eq{"account_id": accountID, "external_campaign_id": externalID}),
		squirrel.Insert(campaignsTable).
			Columns("account_id", "external_campaign_id", "campaign_name").
			Values(accountID, externalID, nullableString(name)).
			Suffix("ON CONFLICT ON CONSTRAINT dim_campaign_account_external_key DO NOTHING RETURNING campaign_id"),
	)
}

func (r *dimensionRepository) GetOrCreateAdset(ctx context.Context, campaignID int, externalID, name string) (int, error) {
	if externalID == "" {
		return 0, domain.NewWarehouseError(adsetsTable, domain.ErrValidation, "external adset id is required")
	}

	return r.getOrCreate(ctx, adsetsTable,
		squirrel.Select("adset_id").From(adsetsTable).
			Where(squirrel.Eq{"campaign_id": campaignID, "external_adset_id": externalID}),
		squirrel.Insert(adsetsTable).
			Columns("campaign_id", "external_adset_id", "adset_name").
			Values(campaignID, externalID, nullableString(name)).
			Suffix("ON CONFLICT ON CONSTRAINT dim_adset_campaign_external_key DO NOTHING RETURNING adset_id"),
	)
}

func (r *dimensionRepository) GetOrCreateAd(ctx context.Context, adsetID int, externalID, name string) (int, error) {
	if externalID == "" {
		return 0, domain.NewWarehouseError(adsTable, domain.ErrValidation, "external ad id is required")
	}

	return r.getOrCreate(ctx, adsTable,
		squirrel.Select("ad_id").From(adsTable).
			Where(squirrel.Eq{"adset_id": adsetID, "external_ad_id": externalID}),
		squirrel.Insert(adsTable).
			Columns("adset_id", "external_ad_id", "ad_name").
			Values(adsetID, externalID, nullableString(name)).
			Suffix("ON CONFLICT ON CONSTRAINT dim_ad_adset_external_key DO NOTHING RETURNING ad_id"),
	)
}

func (r *dimensionRepository) GetOrCreateAttribution(ctx context.Context, platformID int, windowType, description string) (int, error) {
	if windowType == "" {
		return 0, domain.NewWarehouseError(attributionsTable, domain.ErrValidation, "attribution window type is required")
	}

	return r.getOrCreate(ctx, attributionsTable,
		squirrel.Select("attribution_id").From(attributionsTable).
			Where(squirrel.Eq{"platform_id": platformID, "window_type": windowType}),
		squirrel.Insert(attributionsTable).
			Columns("platform_id", "window_type", "description").
			Values(platformID, windowType, nullableString(description)).
			Suffix("ON CONFLICT ON CONSTRAINT dim_attribution_platform_window_key DO NOTHING RETURNING attribution_id"),
	)
}

// GetOrCreateCountry falls back to the iso2 code as the display name when the
// caller only knows the code, which is all a staging row carries.
func (r *dimensionRepository) GetOrCreateCountry(ctx context.Context, iso2, name string) (int, error) {
	if iso2 == "" {
		return 0, domain.NewWarehouseError(countriesTable, domain.ErrValidation, "country iso2 is required")
	}
	if name == "" {
		name = iso2
	}

	return r.getOrCreate(ctx, countriesTable,
		squirrel.Select("country_id").From(countriesTable).Where(squirrel.Eq{"iso2": iso2}),
		squirrel.Insert(countriesTable).
			Columns("iso2", "country_name").
			Values(iso2, name).
			Suffix("ON CONFLICT ON CONSTRAINT dim_country_iso2_key DO NOTHING RETURNING country_id"),
	)
}

func (r *dimensionRepository) GetOrCreateRegion(ctx context.Context, countryID int, name, isoSubdivision string) (int, error) {
	if name == "" {
		return 0, domain.NewWarehouseError(regionsTable, domain.ErrValidation, "region name is required")
	}

	return r.getOrCreate(ctx, regionsTable,
		squirrel.Select("region_id").From(regionsTable).
			Where(squirrel.Eq{"country_id": countryID, "region_name": name}),
		squirrel.Insert(regionsTable).
			Columns("country_id", "region_name", "iso_subdivision").
			Values(countryID, name, nullableString(isoSubdivision)).
			Suffix("ON CONFLICT ON CONSTRAINT dim_region_country_name_key DO NOTHING RETURNING region_id"),
	)
}

func (r *dimensionRepository) GetOrCreateCity(ctx context.Context, regionID int, name string) (int, error) {
	if name == "" {
		return 0, domain.NewWarehouseError(citiesTable, domain.ErrValidation, "city name is required")
	}

	return r.getOrCreate(ctx, citiesTable,
		squirrel.Select("city_id").From(citiesTable).
			Where(squirrel.Eq{"region_id": regionID, "city_name": name}),
		squirrel.Insert(citiesTable).
			Columns("region_id", "city_name").
			Values(regionID, name).
			Suffix("ON CONFLICT ON CONSTRAINT dim_city_region_name_key DO NOTHING RETURNING city_id"),
	)
}

func (r *dimensionRepository) GetOrCreatePostal(ctx context.Context, cityID int, code string) (int, error) {
	if code == "" {
		return 0, domain.NewWarehouseError(postalsTable, domain.ErrValidation, "postal code is required")
	}

	return r.getOrCreate(ctx, postalsTable,
		squirrel.Select("postal_id").From(postalsTable).
			Where(squirrel.Eq{"city_id": cityID, "postal_code": code}),
		squirrel.Insert(postalsTable).
			Columns("city_id", "postal_code").
			Values(cityID, code).
			Suffix("ON CONFLICT ON CONSTRAINT dim_postal_city_code_key DO NOTHING RETURNING postal_id"),
	)
}

func (r *dimensionRepository) GetOrCreateDMA(ctx context.Context, code, name string) (int, error) {
	if code == "" {
		return 0, domain.NewWarehouseError(dmasTable, domain.ErrValidation, "dma code is required")
	}
	if name == "" {
		name = code
	}

	return r.getOrCreate(ctx, dmasTable,
		squirrel.Select("dma_id").From(dmasTable).Where(squirrel.Eq{"dma_code": code}),
		squirrel.Insert(dmasTable).
			Columns("dma_code", "dma_name").
			Values(code, name).
			Suffix("ON CONFLICT ON CONSTRAINT dim_dma_dma_code_key DO NOTHING RETURNING dma_id"),
	)
}

func (r *dimensionRepository) GetOrCreatePlatformDMALabel(ctx context.Context, platformID int, label string, dmaID int) (int, error) {
	if label == "" {
		return 0, domain.NewWarehouseError(platformDMATable, domain.ErrValidation, "platform dma label is required")
	}

	return r.getOrCreate(ctx, platformDMATable,
		squirrel.Select("id").From(platformDMATable).
			Where(squirrel.Eq{"platform_id": platformID, "platform_dma_label": label}),
		squirrel.Insert(platformDMATable).
			Columns("platform_id", "platform_dma_label", "dma_id").
			Values(platformID, label, dmaID).
			Suffix("ON CONFLICT ON CONSTRAINT map_platform_dma_platform_label_key DO NOTHING RETURNING id"),
	)
}

// LookupCityRef resolves a natural city key to surrogate ids without creating
// anything. NotFound at any level of the hierarchy is NotFound for the whole
// key.
func (r *dimensionRepository) LookupCityRef(ctx context.Context, key domain.CityNaturalKey) (domain.CityRef, error) {
	query, args, err := squirrel.
		Select("co.country_id", "re.region_id", "ci.city_id").
		From(countriesTable + " co").
		Join(regionsTable + " re ON re.country_id = co.country_id").
		Join(citiesTable + " ci ON ci.region_id = re.region_id").
		Where(squirrel.Eq{
			"co.iso2":        key.CountryISO2,
			"re.region_name": key.RegionName,
			"ci.city_name":   key.CityName,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.CityRef{}, err
	}

	var ref domain.CityRef
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&ref.CountryID, &ref.RegionID, &ref.CityID)
	if err != nil {
		return domain.CityRef{}, translateError("lookup city", err)
	}

	return ref, nil
}

func (r *dimensionRepository) LookupDMAByPlatformLabel(ctx context.Context, platformID int, label string) (int, error) {
	query, args, err := squirrel.
		Select("dma_id").
		From(platformDMATable).
		Where(squirrel.Eq{"platform_id": platformID, "platform_dma_label": label}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var dmaID int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&dmaID)
	if err != nil {
		return 0, translateError("lookup platform dma label", err)
	}

	return dmaID, nil
}

// GetDateID returns NotFound when the calendar has not been populated for the
// requested day. Fact writers treat that as a hard error; the calendar must
// cover every date the system will ever reference.
func (r *dimensionRepository) GetDateID(ctx context.Context, day time.Time) (int, error) {
	query, args, err := squirrel.
		Select("date_id").
		From(datesTable).
		Where(squirrel.Eq{"date_actual": day.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var dateID int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&dateID)
	if err != nil {
		return 0, translateError("lookup calendar date", err)
	}

	return dateID, nil
}

// calendarChunkDays caps one INSERT at 6000 bind parameters; lib/pq rejects
// statements beyond 65535.
const calendarChunkDays = 1000

// PopulateCalendar precomputes one row per day in [from, to], date_id encoded
// as YYYYMMDD. Already-present days are left untouched. Long ranges are
// written in chunks so decades of calendar fit within the driver's parameter
// limit.
func (r *dimensionRepository) PopulateCalendar(ctx context.Context, from, to time.Time) (int, error) {
	if to.Before(from) {
		return 0, domain.NewWarehouseError(datesTable, domain.ErrValidation, "calendar range end precedes start")
	}

	count := 0
	day := from
	for !day.After(to) {
		builder := squirrel.
			Insert(datesTable).
			Columns("date_id", "date_actual", "week", "month", "quarter", "year")

		days := 0
		for ; !day.After(to) && days < calendarChunkDays; day = day.AddDate(0, 0, 1) {
			cal := CalendarRow(day)
			builder = builder.Values(cal.DateID, cal.Actual.Format("2006-01-02"), cal.Week, cal.Month, cal.Quarter, cal.Year)
			days++
		}

		query, args, err := builder.
			Suffix("ON CONFLICT (date_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return 0, err
		}

		if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
			return 0, translateError("populate calendar", err)
		}

		count += days
	}

	return count, nil
}

// CalendarRow derives the precomputed fields for one day.
func CalendarRow(day time.Time) domain.CalendarDate {
	_, week := day.ISOWeek()
	return domain.CalendarDate{
		DateID:  day.Year()*10000 + int(day.Month())*100 + day.Day(),
		Actual:  day,
		Week:    week,
		Month:   int(day.Month()),
		Quarter: (int(day.Month())-1)/3 + 1,
		Year:    day.Year(),
	}
}

// getOrCreate is the shared lookup-insert-relookup cycle. The insert carries
// ON CONFLICT DO NOTHING RETURNING, so losing a race yields no row and the
// final re-read picks up the winner's id.
func (r *dimensionRepository) getOrCreate(ctx context.Context, op string, sel squirrel.SelectBuilder, ins squirrel.InsertBuilder) (int, error) {
	id, err := r.selectID(ctx, op, sel)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	insSQL, insArgs, err := ins.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var newID int
	err = r.conn.QueryRowContext(ctx, insSQL, insArgs...).Scan(&newID)
	if err == nil {
		return newID, nil
	}
	if err != sql.ErrNoRows {
		return 0, translateError(op, err)
	}

	return r.selectID(ctx, op, sel)
}

func (r *dimensionRepository) selectID(ctx context.Context, op string, sel squirrel.SelectBuilder) (int, error) {
	query, args, err := sel.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, translateError(op, err)
	}

	return id, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
