package reconciling

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
	"github.com/vfg2006/marketing-warehouse-api/pkg/utils"
)

const defaultBatchLimit = 1000

// TxRunner is the slice of the connection the reconciler needs. Batches run
// with deferrable constraints deferred so staging backfills may point at
// dimensions created later in the same transaction.
type TxRunner interface {
	RunInDeferredTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Repo factories bind repositories to whichever Queryer a batch runs on, the
// live connection or an open transaction.
type (
	DimensionRepoFactory func(postgres.Queryer) repository.DimensionRepository
	StagingRepoFactory   func(postgres.Queryer) repository.StagingRepository
)

// StagingRowInput is one raw row as submitted by an ingestion client.
type StagingRowInput struct {
	Date        time.Time       `json:"date"`
	CountryISO2 string          `json:"country_iso2"`
	RegionCode  string          `json:"region_code"`
	CityName    string          `json:"city_name"`
	Orders      decimal.Decimal `json:"orders"`
	GrossSales  decimal.Decimal `json:"gross_sales"`
	Refunds     decimal.Decimal `json:"refunds"`
	Shipping    decimal.Decimal `json:"shipping"`
}

// IngestBatchRequest lands a batch of raw rows for one account.
type IngestBatchRequest struct {
	Platform          string            `json:"platform"`
	ExternalAccountID string            `json:"external_account_id"`
	AccountName       string            `json:"account_name"`
	SourceFile        string            `json:"source_file"`
	Rows              []StagingRowInput `json:"rows"`
}

// BatchSummary reports the outcome of an ingestion or reconciliation run.
type BatchSummary struct {
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Resolved  int    `json:"resolved"`
	Partial   int    `json:"partial"`
}

// Reconciler lands raw rows in staging and resolves their natural keys into
// dimension references.
type Reconciler interface {
	IngestBatch(ctx context.Context, req *IngestBatchRequest) (*BatchSummary, error)
	ReconcileBatch(ctx context.Context, limit int) (*BatchSummary, error)
	ListIngestionLog(ctx context.Context, limit int) ([]domain.IngestionLogEntry, error)
}

type Service struct {
	conn        TxRunner
	dimensions  DimensionRepoFactory
	staging     StagingRepoFactory
	stagingRepo repository.StagingRepository
	logRepo     repository.IngestionLogRepository
	retries     uint64
}

func NewService(
	conn TxRunner,
	dimensions DimensionRepoFactory,
	staging StagingRepoFactory,
	stagingRepo repository.StagingRepository,
	logRepo repository.IngestionLogRepository,
) Reconciler {
	return &Service{
		conn:        conn,
		dimensions:  dimensions,
		staging:     staging,
		stagingRepo: stagingRepo,
		logRepo:     logRepo,
		retries:     3,
	}
}

// IngestBatch lands the rows in staging keyed purely by natural keys. The
// platform and account are resolved inside the same deferred-constraint
// transaction that writes the rows, so a brand-new account cannot strand its
// batch. Re-ingesting a key refreshes its measures, making the operation
// idempotent.
func (s *Service) IngestBatch(ctx context.Context, req *IngestBatchRequest) (*BatchSummary, error) {
	if req.Platform == "" || req.ExternalAccountID == "" {
		return nil, domain.NewWarehouseError("ingest batch", domain.ErrValidation,
			"platform and external_account_id are required")
	}
	if len(req.Rows) == 0 {
		return nil, domain.NewWarehouseError("ingest batch", domain.ErrValidation, "batch has no rows")
	}
	for _, row := range req.Rows {
		if row.Date.IsZero() || row.CountryISO2 == "" {
			return nil, domain.NewWarehouseError("ingest batch", domain.ErrValidation,
				"every row needs a date and a country_iso2")
		}
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id":   runID,
		"platform": req.Platform,
		"account":  req.ExternalAccountID,
		"rows":     len(req.Rows),
	})
	logger.Info("ingesting staging batch")

	started := time.Now()

	var platformID int
	err = s.runWithRetry(ctx, func(tx *sql.Tx) error {
		dims := s.dimensions(tx)

		var err error
		platformID, err = dims.GetOrCreatePlatform(ctx, req.Platform)
		if err != nil {
			return err
		}

		accountID, err := dims.GetOrCreateAccount(ctx, platformID, req.ExternalAccountID, req.AccountName)
		if err != nil {
			return err
		}

		rows := make([]domain.StagingShopifyRow, 0, len(req.Rows))
		for _, in := range req.Rows {
			row := domain.StagingShopifyRow{
				Date:        in.Date,
				PlatformID:  platformID,
				AccountID:   accountID,
				CountryISO2: in.CountryISO2,
				RegionCode:  in.RegionCode,
				CityName:    in.CityName,
				Orders:      in.Orders,
				GrossSales:  in.GrossSales,
				Refunds:     in.Refunds,
				Shipping:    in.Shipping,
			}
			if req.SourceFile != "" {
				src := req.SourceFile
				row.SourceFile = &src
			}
			rows = append(rows, row)
		}

		_, err = s.staging(tx).UpsertRows(ctx, rows)
		return err
	})
	if err != nil {
		s.appendLog(ctx, nil, len(req.Rows), domain.IngestionStatusFailed, err, started)
		return nil, err
	}

	s.appendLog(ctx, &platformID, len(req.Rows), domain.IngestionStatusSuccess, nil, started)
	logger.Info("staging batch landed")

	return &BatchSummary{RunID: runID, Processed: len(req.Rows)}, nil
}

// ReconcileBatch walks pending staging rows and resolves their natural keys
// into dimension ids, creating dimensions on first reference. A row whose
// keys are blank below some level resolves as far as it can and ends PARTIAL;
// PARTIAL rows are retried on later passes. The whole batch commits or rolls
// back as one deferred-constraint transaction.
func (s *Service) ReconcileBatch(ctx context.Context, limit int) (*BatchSummary, error) {
	if limit <= 0 {
		limit = defaultBatchLimit
	}

	pending, err := s.stagingRepo.ListPending(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return &BatchSummary{}, nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"rows":   len(pending),
	})
	logger.Info("reconciling staging batch")

	keys := make([]domain.StagingKey, 0, len(pending))
	for _, row := range pending {
		keys = append(keys, row.Key())
	}

	if err := s.stagingRepo.MarkStatus(ctx, keys, domain.ResolutionResolving); err != nil {
		return nil, err
	}

	started := time.Now()
	summary := &BatchSummary{RunID: runID, Processed: len(pending)}

	err = s.runWithRetry(ctx, func(tx *sql.Tx) error {
		summary.Resolved, summary.Partial = 0, 0

		dims := s.dimensions(tx)
		staging := s.staging(tx)

		for i := range pending {
			row := pending[i]
			if err := s.resolveRow(ctx, dims, &row); err != nil {
				return err
			}

			if err := staging.BackfillResolution(ctx, &row); err != nil {
				return err
			}

			if row.Status == domain.ResolutionResolved {
				summary.Resolved++
			} else {
				summary.Partial++
			}
		}

		return nil
	})
	if err != nil {
		// Put the batch back in the queue so the next pass retries it.
		if markErr := s.stagingRepo.MarkStatus(ctx, keys, domain.ResolutionUnresolved); markErr != nil {
			logger.WithError(markErr).Error("failed to reset staging rows after aborted batch")
		}
		s.appendLog(ctx, nil, len(pending), domain.IngestionStatusFailed, err, started)
		return nil, err
	}

	status := domain.IngestionStatusSuccess
	if summary.Partial > 0 {
		status = domain.IngestionStatusPartial
	}
	s.appendLog(ctx, nil, len(pending), status, nil, started)

	logger.WithFields(log.Fields{
		"resolved": summary.Resolved,
		"partial":  summary.Partial,
	}).Info("staging batch reconciled")

	return summary, nil
}

func (s *Service) ListIngestionLog(ctx context.Context, limit int) ([]domain.IngestionLogEntry, error) {
	return s.logRepo.List(ctx, limit)
}

// resolveRow fills the row's dimension ids top down: country, then region,
// then city. A blank key stops the descent and marks the row PARTIAL; levels
// above the blank still resolve.
func (s *Service) resolveRow(ctx context.Context, dims repository.DimensionRepository, row *domain.StagingShopifyRow) error {
	row.CountryID, row.RegionID, row.CityID = nil, nil, nil
	row.Status = domain.ResolutionPartial

	if row.CountryISO2 == "" {
		return nil
	}

	countryID, err := dims.GetOrCreateCountry(ctx, row.CountryISO2, "")
	if err != nil {
		return err
	}
	row.CountryID = &countryID

	if row.RegionCode == "" {
		return nil
	}

	// Staging rows only carry the region code, which doubles as the region
	// name until richer reference data arrives.
	regionID, err := dims.GetOrCreateRegion(ctx, countryID, row.RegionCode, row.RegionCode)
	if err != nil {
		return err
	}
	row.RegionID = &regionID

	if row.CityName == "" {
		return nil
	}

	cityID, err := dims.GetOrCreateCity(ctx, regionID, row.CityName)
	if err != nil {
		return err
	}
	row.CityID = &cityID
	row.Status = domain.ResolutionResolved

	return nil
}

// runWithRetry retries the transaction on serialization failures and
// deadlocks; anything else fails immediately.
func (s *Service) runWithRetry(ctx context.Context, fn func(*sql.Tx) error) error {
	operation := func() error {
		err := s.conn.RunInDeferredTransaction(ctx, fn)
		if err != nil && !repository.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.retries)
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}

func (s *Service) appendLog(ctx context.Context, platformID *int, records int, status string, runErr error, started time.Time) {
	duration := decimal.NewFromFloat(time.Since(started).Seconds())

	entry := &domain.IngestionLogEntry{
		PlatformID:     platformID,
		RecordsFetched: records,
		Status:         status,
		DurationSecs:   &duration,
	}
	if runErr != nil {
		msg := runErr.Error()
		entry.ErrorMessage = &msg
	}

	if _, err := s.logRepo.Append(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).Error("failed to append ingestion log entry")
	}
}
