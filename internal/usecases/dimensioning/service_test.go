package dimensioning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_PopulateCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	mockDims := mocks.NewMockDimensionRepository(ctrl)
	mockDims.EXPECT().PopulateCalendar(gomock.Any(), from, to).Return(366, nil)

	service := NewService(mockDims, mocks.NewMockMetricAvailabilityRepository(ctrl))
	days, err := service.PopulateCalendar(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 366, days)
}

func TestService_RegisterDMALabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDims := mocks.NewMockDimensionRepository(ctrl)
	mockDims.EXPECT().GetOrCreatePlatform(gomock.Any(), "meta").Return(1, nil)
	mockDims.EXPECT().GetOrCreateDMA(gomock.Any(), "803", "Los Angeles").Return(7, nil)
	mockDims.EXPECT().GetOrCreatePlatformDMALabel(gomock.Any(), 1, "Los Angeles DMA", 7).Return(12, nil)

	service := NewService(mockDims, mocks.NewMockMetricAvailabilityRepository(ctrl))
	id, err := service.RegisterDMALabel(context.Background(), "meta", "Los Angeles DMA", "803", "Los Angeles")
	require.NoError(t, err)
	assert.Equal(t, 12, id)
}

func TestService_ResolveDMALabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDims := mocks.NewMockDimensionRepository(ctrl)
	mockDims.EXPECT().GetOrCreatePlatform(gomock.Any(), "meta").Return(1, nil)
	mockDims.EXPECT().LookupDMAByPlatformLabel(gomock.Any(), 1, "Unknown").
		Return(0, domain.NewWarehouseError("lookup platform dma label", domain.ErrNotFound, ""))

	service := NewService(mockDims, mocks.NewMockMetricAvailabilityRepository(ctrl))
	_, err := service.ResolveDMALabel(context.Background(), "meta", "Unknown")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_SetMetricAvailability(t *testing.T) {
	t.Run("persists a complete row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		row := &domain.MetricAvailability{
			PlatformID:    1,
			LocationLevel: "dma",
			MetricName:    "impressions",
			IsAvailable:   true,
		}

		mockMetrics := mocks.NewMockMetricAvailabilityRepository(ctrl)
		mockMetrics.EXPECT().Set(gomock.Any(), row).Return(nil)

		service := NewService(mocks.NewMockDimensionRepository(ctrl), mockMetrics)
		assert.NoError(t, service.SetMetricAvailability(context.Background(), row))
	})

	t.Run("rejects a row without a metric name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockDimensionRepository(ctrl),
			mocks.NewMockMetricAvailabilityRepository(ctrl),
		)
		err := service.SetMetricAvailability(context.Background(), &domain.MetricAvailability{
			PlatformID:    1,
			LocationLevel: "dma",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
