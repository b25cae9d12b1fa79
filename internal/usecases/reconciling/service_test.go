package reconciling

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeTxRunner stands in for the connection: the callback runs against a nil
// transaction because the repo factories below hand back mocks anyway.
type fakeTxRunner struct {
	err   error
	calls int
}

func (f *fakeTxRunner) RunInDeferredTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

func newTestService(
	runner TxRunner,
	dims repository.DimensionRepository,
	stagingTx repository.StagingRepository,
	stagingRepo repository.StagingRepository,
	logRepo repository.IngestionLogRepository,
) *Service {
	return &Service{
		conn:        runner,
		dimensions:  func(postgres.Queryer) repository.DimensionRepository { return dims },
		staging:     func(postgres.Queryer) repository.StagingRepository { return stagingTx },
		stagingRepo: stagingRepo,
		logRepo:     logRepo,
		retries:     0,
	}
}

func stagingRow(dateStr, iso2, regionCode, cityName string) domain.StagingShopifyRow {
	date, _ := time.Parse("2006-01-02", dateStr)
	return domain.StagingShopifyRow{
		Date:        date,
		PlatformID:  1,
		AccountID:   5,
		CountryISO2: iso2,
		RegionCode:  regionCode,
		CityName:    cityName,
		Orders:      decimal.NewFromInt(3),
		GrossSales:  decimal.NewFromFloat(120.50),
		Status:      domain.ResolutionUnresolved,
	}
}

func TestService_IngestBatch_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *IngestBatchRequest
	}{
		{
			name: "missing platform",
			req: &IngestBatchRequest{
				ExternalAccountID: "acct-1",
				Rows:              []StagingRowInput{{Date: time.Now(), CountryISO2: "US"}},
			},
		},
		{
			name: "missing account",
			req: &IngestBatchRequest{
				Platform: "shopify",
				Rows:     []StagingRowInput{{Date: time.Now(), CountryISO2: "US"}},
			},
		},
		{
			name: "empty batch",
			req:  &IngestBatchRequest{Platform: "shopify", ExternalAccountID: "acct-1"},
		},
		{
			name: "row without date",
			req: &IngestBatchRequest{
				Platform:          "shopify",
				ExternalAccountID: "acct-1",
				Rows:              []StagingRowInput{{CountryISO2: "US"}},
			},
		},
		{
			name: "row without country",
			req: &IngestBatchRequest{
				Platform:          "shopify",
				ExternalAccountID: "acct-1",
				Rows:              []StagingRowInput{{Date: time.Now()}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := newTestService(&fakeTxRunner{}, nil, nil, nil, mocks.NewMockIngestionLogRepository(ctrl))

			_, err := service.IngestBatch(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestService_IngestBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDims := mocks.NewMockDimensionRepository(ctrl)
	mockStagingTx := mocks.NewMockStagingRepository(ctrl)
	mockLog := mocks.NewMockIngestionLogRepository(ctrl)

	mockDims.EXPECT().GetOrCreatePlatform(gomock.Any(), "shopify").Return(1, nil)
	mockDims.EXPECT().GetOrCreateAccount(gomock.Any(), 1, "acct-1", "Demo Store").Return(5, nil)
	mockStagingTx.EXPECT().UpsertRows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []domain.StagingShopifyRow) (int, error) {
			require.Len(t, rows, 2)
			assert.Equal(t, 1, rows[0].PlatformID)
			assert.Equal(t, 5, rows[0].AccountID)
			require.NotNil(t, rows[0].SourceFile)
			assert.Equal(t, "export-2024-06.csv", *rows[0].SourceFile)
			return len(rows), nil
		})

	var loggedStatus string
	mockLog.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.IngestionLogEntry) (int64, error) {
			loggedStatus = entry.Status
			assert.Equal(t, 2, entry.RecordsFetched)
			return 1, nil
		})

	service := newTestService(&fakeTxRunner{}, mockDims, mockStagingTx, nil, mockLog)

	summary, err := service.IngestBatch(context.Background(), &IngestBatchRequest{
		Platform:          "shopify",
		ExternalAccountID: "acct-1",
		AccountName:       "Demo Store",
		SourceFile:        "export-2024-06.csv",
		Rows: []StagingRowInput{
			{Date: time.Now(), CountryISO2: "US", RegionCode: "CA", CityName: "Los Angeles"},
			{Date: time.Now(), CountryISO2: "US", RegionCode: "CA", CityName: "San Diego"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, domain.IngestionStatusSuccess, loggedStatus)
}

func TestService_ReconcileBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDims := mocks.NewMockDimensionRepository(ctrl)
	mockStagingTx := mocks.NewMockStagingRepository(ctrl)
	mockStaging := mocks.NewMockStagingRepository(ctrl)
	mockLog := mocks.NewMockIngestionLogRepository(ctrl)

	pending := []domain.StagingShopifyRow{
		stagingRow("2024-06-01", "US", "CA", "Los Angeles"),
		stagingRow("2024-06-01", "US", "", ""),
	}

	mockStaging.EXPECT().ListPending(gomock.Any(), 1000).Return(pending, nil)
	mockStaging.EXPECT().MarkStatus(gomock.Any(), gomock.Len(2), domain.ResolutionResolving).Return(nil)

	mockDims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "").Return(1, nil).Times(2)
	// The region code doubles as the region name.
	mockDims.EXPECT().GetOrCreateRegion(gomock.Any(), 1, "CA", "CA").Return(10, nil)
	mockDims.EXPECT().GetOrCreateCity(gomock.Any(), 10, "Los Angeles").Return(100, nil)

	statuses := make(map[string]domain.ResolutionStatus)
	mockStagingTx.EXPECT().BackfillResolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *domain.StagingShopifyRow) error {
			statuses[row.CityName] = row.Status
			return nil
		}).Times(2)

	var loggedStatus string
	mockLog.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.IngestionLogEntry) (int64, error) {
			loggedStatus = entry.Status
			return 1, nil
		})

	service := newTestService(&fakeTxRunner{}, mockDims, mockStagingTx, mockStaging, mockLog)

	summary, err := service.ReconcileBatch(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Resolved)
	assert.Equal(t, 1, summary.Partial)
	assert.Equal(t, domain.ResolutionResolved, statuses["Los Angeles"])
	assert.Equal(t, domain.ResolutionPartial, statuses[""])
	assert.Equal(t, domain.IngestionStatusPartial, loggedStatus)
}

func TestService_ReconcileBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStaging := mocks.NewMockStagingRepository(ctrl)
	mockStaging.EXPECT().ListPending(gomock.Any(), 50).Return([]domain.StagingShopifyRow{}, nil)

	service := newTestService(&fakeTxRunner{}, nil, nil, mockStaging, nil)

	summary, err := service.ReconcileBatch(context.Background(), 50)
	require.NoError(t, err)
	assert.Zero(t, summary.Processed)
}

func TestService_ReconcileBatch_AbortedBatchResetsRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStaging := mocks.NewMockStagingRepository(ctrl)
	mockLog := mocks.NewMockIngestionLogRepository(ctrl)

	pending := []domain.StagingShopifyRow{stagingRow("2024-06-01", "US", "CA", "Los Angeles")}

	mockStaging.EXPECT().ListPending(gomock.Any(), 1000).Return(pending, nil)
	mockStaging.EXPECT().MarkStatus(gomock.Any(), gomock.Len(1), domain.ResolutionResolving).Return(nil)
	// The whole batch rolls back, so the rows go back into the queue.
	mockStaging.EXPECT().MarkStatus(gomock.Any(), gomock.Len(1), domain.ResolutionUnresolved).Return(nil)

	var loggedStatus string
	mockLog.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.IngestionLogEntry) (int64, error) {
			loggedStatus = entry.Status
			require.NotNil(t, entry.ErrorMessage)
			return 1, nil
		})

	txErr := errors.New("connection reset")
	service := newTestService(&fakeTxRunner{err: txErr}, nil, nil, mockStaging, mockLog)

	_, err := service.ReconcileBatch(context.Background(), 0)
	assert.ErrorIs(t, err, txErr)
	assert.Equal(t, domain.IngestionStatusFailed, loggedStatus)
}

func TestService_ResolveRow(t *testing.T) {
	tests := []struct {
		name       string
		row        domain.StagingShopifyRow
		setup      func(*mocks.MockDimensionRepository)
		wantStatus domain.ResolutionStatus
		wantCity   *int
	}{
		{
			name: "full key chain resolves",
			row:  stagingRow("2024-06-01", "US", "CA", "Los Angeles"),
			setup: func(dims *mocks.MockDimensionRepository) {
				dims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "").Return(1, nil)
				dims.EXPECT().GetOrCreateRegion(gomock.Any(), 1, "CA", "CA").Return(10, nil)
				dims.EXPECT().GetOrCreateCity(gomock.Any(), 10, "Los Angeles").Return(100, nil)
			},
			wantStatus: domain.ResolutionResolved,
			wantCity:   intPtr(100),
		},
		{
			name: "blank region stops the descent",
			row:  stagingRow("2024-06-01", "US", "", "Los Angeles"),
			setup: func(dims *mocks.MockDimensionRepository) {
				dims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "").Return(1, nil)
			},
			wantStatus: domain.ResolutionPartial,
		},
		{
			name: "blank city ends partial",
			row:  stagingRow("2024-06-01", "US", "CA", ""),
			setup: func(dims *mocks.MockDimensionRepository) {
				dims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "").Return(1, nil)
				dims.EXPECT().GetOrCreateRegion(gomock.Any(), 1, "CA", "CA").Return(10, nil)
			},
			wantStatus: domain.ResolutionPartial,
		},
		{
			name:       "blank country resolves nothing",
			row:        stagingRow("2024-06-01", "", "CA", "Los Angeles"),
			setup:      func(*mocks.MockDimensionRepository) {},
			wantStatus: domain.ResolutionPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDims := mocks.NewMockDimensionRepository(ctrl)
			tt.setup(mockDims)

			service := newTestService(&fakeTxRunner{}, mockDims, nil, nil, nil)

			row := tt.row
			err := service.resolveRow(context.Background(), mockDims, &row)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, row.Status)
			if tt.wantCity != nil {
				require.NotNil(t, row.CityID)
				assert.Equal(t, *tt.wantCity, *row.CityID)
			} else {
				assert.Nil(t, row.CityID)
			}
		})
	}
}

func intPtr(i int) *int {
	return &i
}
