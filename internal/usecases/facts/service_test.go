package facts

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RecordMarketingFact(t *testing.T) {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	spend := decimal.NewFromFloat(150.25)
	impressions := int64(10000)

	baseRequest := func() *MarketingFactRequest {
		return &MarketingFactRequest{
			Platform:          "meta",
			ExternalAccountID: "act_123",
			AccountName:       "Demo",
			ExternalCampaign:  "cmp_1",
			ExternalAdset:     "ads_1",
			ExternalAd:        "ad_1",
			Date:              date,
			Spend:             &spend,
			Impressions:       &impressions,
		}
	}

	expectHierarchy := func(dims *mocks.MockDimensionRepository) {
		dims.EXPECT().GetDateID(gomock.Any(), date).Return(20240601, nil)
		dims.EXPECT().GetOrCreatePlatform(gomock.Any(), "meta").Return(1, nil)
		dims.EXPECT().GetOrCreateAccount(gomock.Any(), 1, "act_123", "Demo").Return(2, nil)
		dims.EXPECT().GetOrCreateCampaign(gomock.Any(), 2, "cmp_1", "").Return(3, nil)
		dims.EXPECT().GetOrCreateAdset(gomock.Any(), 3, "ads_1", "").Return(4, nil)
		dims.EXPECT().GetOrCreateAd(gomock.Any(), 4, "ad_1", "").Return(5, nil)
	}

	t.Run("resolves the full ad hierarchy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)
		expectHierarchy(mockDims)

		mockFacts.EXPECT().AppendMarketingFact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fact *domain.MarketingDailyFact) (int64, error) {
				assert.Equal(t, 20240601, fact.DateID)
				assert.Equal(t, 5, fact.AdID)
				assert.Nil(t, fact.DMAID)
				assert.Nil(t, fact.AttributionID)
				require.NotNil(t, fact.Spend)
				assert.True(t, fact.Spend.Equal(spend))
				return 99, nil
			})

		service := NewService(mockDims, mocks.NewMockCityDMARepository(ctrl), mockFacts)
		factID, err := service.RecordMarketingFact(context.Background(), baseRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(99), factID)
	})

	t.Run("registered dma label attributes the fact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)
		expectHierarchy(mockDims)
		mockDims.EXPECT().LookupDMAByPlatformLabel(gomock.Any(), 1, "Los Angeles DMA").Return(7, nil)

		mockFacts.EXPECT().AppendMarketingFact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fact *domain.MarketingDailyFact) (int64, error) {
				require.NotNil(t, fact.DMAID)
				assert.Equal(t, 7, *fact.DMAID)
				return 100, nil
			})

		req := baseRequest()
		req.DMALabel = "Los Angeles DMA"

		service := NewService(mockDims, mocks.NewMockCityDMARepository(ctrl), mockFacts)
		_, err := service.RecordMarketingFact(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("unregistered dma label leaves the fact unattributed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)
		expectHierarchy(mockDims)
		mockDims.EXPECT().LookupDMAByPlatformLabel(gomock.Any(), 1, "Unknown DMA").
			Return(0, domain.NewWarehouseError("lookup platform dma label", domain.ErrNotFound, ""))

		mockFacts.EXPECT().AppendMarketingFact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fact *domain.MarketingDailyFact) (int64, error) {
				assert.Nil(t, fact.DMAID)
				return 101, nil
			})

		req := baseRequest()
		req.DMALabel = "Unknown DMA"

		service := NewService(mockDims, mocks.NewMockCityDMARepository(ctrl), mockFacts)
		_, err := service.RecordMarketingFact(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("geo breakdown resolves dma through the mapping windows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockCityDMA := mocks.NewMockCityDMARepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)
		expectHierarchy(mockDims)

		mockDims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "").Return(30, nil)
		mockDims.EXPECT().GetOrCreateRegion(gomock.Any(), 30, "California", "").Return(31, nil)

		ref := domain.CityRef{CountryID: 30, RegionID: 31, CityID: 100}
		mockDims.EXPECT().LookupCityRef(gomock.Any(), domain.CityNaturalKey{
			CountryISO2: "US",
			RegionName:  "California",
			CityName:    "Los Angeles",
		}).Return(ref, nil)
		mockCityDMA.EXPECT().ActiveMappings(gomock.Any(), ref, date).Return([]domain.DMAShareResult{
			{DMAID: 9, DMACode: "862", Share: decimal.NewFromFloat(0.3)},
			{DMAID: 7, DMACode: "803", Share: decimal.NewFromFloat(0.7)},
		}, nil)

		mockFacts.EXPECT().AppendMarketingFact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fact *domain.MarketingDailyFact) (int64, error) {
				require.NotNil(t, fact.DMAID)
				assert.Equal(t, 7, *fact.DMAID)
				require.NotNil(t, fact.CountryID)
				assert.Equal(t, 30, *fact.CountryID)
				require.NotNil(t, fact.RegionID)
				assert.Equal(t, 31, *fact.RegionID)
				return 102, nil
			})

		req := baseRequest()
		req.CountryISO2 = "US"
		req.RegionName = "California"
		req.CityName = "Los Angeles"

		service := NewService(mockDims, mockCityDMA, mockFacts)
		_, err := service.RecordMarketingFact(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("unmapped city leaves the fact unattributed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockCityDMA := mocks.NewMockCityDMARepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)
		expectHierarchy(mockDims)

		mockDims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "").Return(30, nil)
		mockDims.EXPECT().GetOrCreateRegion(gomock.Any(), 30, "California", "").Return(31, nil)

		ref := domain.CityRef{CountryID: 30, RegionID: 31, CityID: 101}
		mockDims.EXPECT().LookupCityRef(gomock.Any(), gomock.Any()).Return(ref, nil)
		mockCityDMA.EXPECT().ActiveMappings(gomock.Any(), ref, date).Return([]domain.DMAShareResult{}, nil)

		mockFacts.EXPECT().AppendMarketingFact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fact *domain.MarketingDailyFact) (int64, error) {
				assert.Nil(t, fact.DMAID)
				return 103, nil
			})

		req := baseRequest()
		req.CountryISO2 = "US"
		req.RegionName = "California"
		req.CityName = "Bakersfield"

		service := NewService(mockDims, mockCityDMA, mockFacts)
		_, err := service.RecordMarketingFact(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("unknown city leaves the fact unattributed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)
		expectHierarchy(mockDims)

		mockDims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "").Return(30, nil)
		mockDims.EXPECT().GetOrCreateRegion(gomock.Any(), 30, "California", "").Return(31, nil)
		mockDims.EXPECT().LookupCityRef(gomock.Any(), gomock.Any()).
			Return(domain.CityRef{}, domain.NewWarehouseError("lookup city", domain.ErrNotFound, ""))

		mockFacts.EXPECT().AppendMarketingFact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fact *domain.MarketingDailyFact) (int64, error) {
				assert.Nil(t, fact.DMAID)
				return 104, nil
			})

		req := baseRequest()
		req.CountryISO2 = "US"
		req.RegionName = "California"
		req.CityName = "Nowhere"

		service := NewService(mockDims, mocks.NewMockCityDMARepository(ctrl), mockFacts)
		_, err := service.RecordMarketingFact(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("date outside the calendar fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockDims.EXPECT().GetDateID(gomock.Any(), date).
			Return(0, domain.NewWarehouseError("lookup calendar date", domain.ErrNotFound, ""))

		service := NewService(mockDims, mocks.NewMockCityDMARepository(ctrl), mocks.NewMockFactRepository(ctrl))
		_, err := service.RecordMarketingFact(context.Background(), baseRequest())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("date is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockDimensionRepository(ctrl),
			mocks.NewMockCityDMARepository(ctrl),
			mocks.NewMockFactRepository(ctrl),
		)

		req := baseRequest()
		req.Date = time.Time{}
		_, err := service.RecordMarketingFact(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_RecordShopifyFact(t *testing.T) {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	revenue := decimal.NewFromFloat(899.90)

	t.Run("resolves the full geo chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)

		mockDims.EXPECT().GetDateID(gomock.Any(), date).Return(20240601, nil)
		mockDims.EXPECT().GetOrCreateCountry(gomock.Any(), "US", "United States").Return(1, nil)
		mockDims.EXPECT().GetOrCreateRegion(gomock.Any(), 1, "California", "").Return(10, nil)
		mockDims.EXPECT().GetOrCreateCity(gomock.Any(), 10, "Los Angeles").Return(100, nil)
		mockDims.EXPECT().GetOrCreatePostal(gomock.Any(), 100, "90001").Return(1000, nil)

		mockFacts.EXPECT().AppendShopifyFact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fact *domain.ShopifyDailyFact) (int64, error) {
				assert.Equal(t, 1000, fact.PostalID)
				require.NotNil(t, fact.Revenue)
				assert.True(t, fact.Revenue.Equal(revenue))
				return 55, nil
			})

		service := NewService(mockDims, mocks.NewMockCityDMARepository(ctrl), mockFacts)
		factID, err := service.RecordShopifyFact(context.Background(), &ShopifyFactRequest{
			Date:        date,
			CountryISO2: "US",
			CountryName: "United States",
			RegionName:  "California",
			CityName:    "Los Angeles",
			PostalCode:  "90001",
			Revenue:     &revenue,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(55), factID)
	})

	t.Run("incomplete geo chain is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockDimensionRepository(ctrl),
			mocks.NewMockCityDMARepository(ctrl),
			mocks.NewMockFactRepository(ctrl),
		)

		_, err := service.RecordShopifyFact(context.Background(), &ShopifyFactRequest{
			Date:        date,
			CountryISO2: "US",
			RegionName:  "California",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_RecordModelResult(t *testing.T) {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	predicted := decimal.NewFromFloat(1234.56)

	t.Run("full key upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockFacts := mocks.NewMockFactRepository(ctrl)

		mockDims.EXPECT().GetOrCreatePlatform(gomock.Any(), "meta").Return(1, nil)
		mockDims.EXPECT().GetOrCreateDMA(gomock.Any(), "803", "").Return(7, nil)
		mockDims.EXPECT().GetDateID(gomock.Any(), date).Return(20240601, nil)

		mockFacts.EXPECT().UpsertModelResult(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, result *domain.ModelResult) (int, error) {
				assert.Equal(t, "mmm", result.ModelName)
				require.NotNil(t, result.DMAID)
				assert.Equal(t, 7, *result.DMAID)
				require.NotNil(t, result.DateID)
				assert.Equal(t, 20240601, *result.DateID)
				return 3, nil
			})

		service := NewService(mockDims, mocks.NewMockCityDMARepository(ctrl), mockFacts)
		id, err := service.RecordModelResult(context.Background(), &ModelResultRequest{
			ModelName:      "mmm",
			ModelVersion:   "v2",
			Platform:       "meta",
			DMACode:        "803",
			Date:           &date,
			PredictedSales: &predicted,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})

	t.Run("national result with no platform or dma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFacts := mocks.NewMockFactRepository(ctrl)
		mockFacts.EXPECT().UpsertModelResult(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, result *domain.ModelResult) (int, error) {
				assert.Nil(t, result.PlatformID)
				assert.Nil(t, result.DMAID)
				assert.Nil(t, result.DateID)
				return 4, nil
			})

		service := NewService(
			mocks.NewMockDimensionRepository(ctrl),
			mocks.NewMockCityDMARepository(ctrl),
			mockFacts,
		)
		_, err := service.RecordModelResult(context.Background(), &ModelResultRequest{
			ModelName:    "mmm",
			ModelVersion: "v2",
		})
		assert.NoError(t, err)
	})

	t.Run("model name and version are required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockDimensionRepository(ctrl),
			mocks.NewMockCityDMARepository(ctrl),
			mocks.NewMockFactRepository(ctrl),
		)
		_, err := service.RecordModelResult(context.Background(), &ModelResultRequest{ModelName: "mmm"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
