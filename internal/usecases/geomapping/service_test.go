package geomapping

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

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_ResolveDMA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDims := mocks.NewMockDimensionRepository(ctrl)
	mockCityDMA := mocks.NewMockCityDMARepository(ctrl)
	service := NewService(mockDims, mockCityDMA)

	key := domain.CityNaturalKey{CountryISO2: "US", RegionName: "California", CityName: "Los Angeles"}
	ref := domain.CityRef{CountryID: 1, RegionID: 10, CityID: 100}
	asOf := day(2024, time.June, 1)

	mockDims.EXPECT().LookupCityRef(gomock.Any(), key).Return(ref, nil)
	mockCityDMA.EXPECT().ActiveMappings(gomock.Any(), ref, asOf).Return([]domain.DMAShareResult{
		{DMAID: 7, DMACode: "803", Share: decimal.NewFromFloat(0.7)},
		{DMAID: 8, DMACode: "804", Share: decimal.NewFromFloat(0.3)},
	}, nil)

	results, err := service.ResolveDMA(context.Background(), key, asOf)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "803", results[0].DMACode)
	assert.True(t, results[0].Share.Add(results[1].Share).Equal(decimal.NewFromInt(1)))
}

func TestService_ResolveDMA_UnknownCity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDims := mocks.NewMockDimensionRepository(ctrl)
	mockCityDMA := mocks.NewMockCityDMARepository(ctrl)
	service := NewService(mockDims, mockCityDMA)

	key := domain.CityNaturalKey{CountryISO2: "US", RegionName: "Nowhere", CityName: "Ghost Town"}
	mockDims.EXPECT().LookupCityRef(gomock.Any(), key).
		Return(domain.CityRef{}, domain.NewWarehouseError("lookup city", domain.ErrNotFound, ""))

	_, err := service.ResolveDMA(context.Background(), key, day(2024, time.June, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AddMapping(t *testing.T) {
	key := domain.CityNaturalKey{CountryISO2: "US", RegionName: "California", CityName: "Los Angeles"}
	ref := domain.CityRef{CountryID: 1, RegionID: 10, CityID: 100}

	tests := []struct {
		name       string
		share      decimal.Decimal
		start, end time.Time
		setup      func(*mocks.MockDimensionRepository, *mocks.MockCityDMARepository)
		wantErr    error
	}{
		{
			name:  "full share with explicit window",
			share: decimal.NewFromInt(1),
			start: day(2020, time.January, 1),
			end:   day(2025, time.January, 1),
			setup: func(dims *mocks.MockDimensionRepository, cityDMA *mocks.MockCityDMARepository) {
				dims.EXPECT().LookupCityRef(gomock.Any(), key).Return(ref, nil)
				dims.EXPECT().GetOrCreateDMA(gomock.Any(), "803", "Los Angeles").Return(7, nil)
				cityDMA.EXPECT().InsertMapping(gomock.Any(), domain.CityDMAMapping{
					CityRef:            ref,
					DMAID:              7,
					EffectiveStartDate: day(2020, time.January, 1),
					EffectiveEndDate:   day(2025, time.January, 1),
					DMAShare:           decimal.NewFromInt(1),
				}).Return(nil)
			},
		},
		{
			name:  "zero dates fall back to sentinel bounds",
			share: decimal.NewFromInt(1),
			setup: func(dims *mocks.MockDimensionRepository, cityDMA *mocks.MockCityDMARepository) {
				dims.EXPECT().LookupCityRef(gomock.Any(), key).Return(ref, nil)
				dims.EXPECT().GetOrCreateDMA(gomock.Any(), "803", "Los Angeles").Return(7, nil)
				cityDMA.EXPECT().InsertMapping(gomock.Any(), domain.CityDMAMapping{
					CityRef:            ref,
					DMAID:              7,
					EffectiveStartDate: domain.DefaultEffectiveStart,
					EffectiveEndDate:   domain.FarFutureEndDate,
					DMAShare:           decimal.NewFromInt(1),
				}).Return(nil)
			},
		},
		{
			name:    "zero share rejected",
			share:   decimal.Zero,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "share above one rejected",
			share:   decimal.NewFromFloat(1.1),
			wantErr: domain.ErrValidation,
		},
		{
			name:    "start after end rejected",
			share:   decimal.NewFromInt(1),
			start:   day(2024, time.June, 1),
			end:     day(2024, time.January, 1),
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDims := mocks.NewMockDimensionRepository(ctrl)
			mockCityDMA := mocks.NewMockCityDMARepository(ctrl)
			if tt.setup != nil {
				tt.setup(mockDims, mockCityDMA)
			}

			service := NewService(mockDims, mockCityDMA)
			err := service.AddMapping(context.Background(), key, "803", "Los Angeles", tt.share, tt.start, tt.end)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_RemapCity(t *testing.T) {
	key := domain.CityNaturalKey{CountryISO2: "US", RegionName: "California", CityName: "Los Angeles"}
	ref := domain.CityRef{CountryID: 1, RegionID: 10, CityID: 100}
	effective := day(2024, time.July, 1)

	t.Run("closes open window and opens the new one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockCityDMA := mocks.NewMockCityDMARepository(ctrl)

		mockDims.EXPECT().LookupCityRef(gomock.Any(), key).Return(ref, nil)
		mockDims.EXPECT().GetOrCreateDMA(gomock.Any(), "862", "").Return(9, nil)
		mockCityDMA.EXPECT().RemapCity(gomock.Any(), ref, 9, decimal.NewFromInt(1), effective).Return(nil)

		service := NewService(mockDims, mockCityDMA)
		err := service.RemapCity(context.Background(), key, "862", decimal.NewFromInt(1), effective)
		assert.NoError(t, err)
	})

	t.Run("effective date is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockDimensionRepository(ctrl), mocks.NewMockCityDMARepository(ctrl))
		err := service.RemapCity(context.Background(), key, "862", decimal.NewFromInt(1), time.Time{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_AuditShares(t *testing.T) {
	la := domain.CityRef{CountryID: 1, RegionID: 10, CityID: 100}
	sd := domain.CityRef{CountryID: 1, RegionID: 10, CityID: 200}

	windows := []domain.CityDMAMapping{
		// Split city: shares sum to 1.0 everywhere, no violation expected.
		{
			CityRef:            la,
			DMAID:              7,
			EffectiveStartDate: domain.DefaultEffectiveStart,
			EffectiveEndDate:   domain.FarFutureEndDate,
			DMAShare:           decimal.NewFromFloat(0.7),
		},
		{
			CityRef:            la,
			DMAID:              8,
			EffectiveStartDate: domain.DefaultEffectiveStart,
			EffectiveEndDate:   domain.FarFutureEndDate,
			DMAShare:           decimal.NewFromFloat(0.3),
		},
		// Underweight city: single 0.8 share.
		{
			CityRef:            sd,
			DMAID:              9,
			EffectiveStartDate: day(2024, time.January, 1),
			EffectiveEndDate:   domain.FarFutureEndDate,
			DMAShare:           decimal.NewFromFloat(0.8),
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCityDMA := mocks.NewMockCityDMARepository(ctrl)
	mockCityDMA.EXPECT().ListWindows(gomock.Any()).Return(windows, nil)

	service := NewService(mocks.NewMockDimensionRepository(ctrl), mockCityDMA)

	violations, err := service.AuditShares(context.Background())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, sd, violations[0].CityRef)
	assert.True(t, violations[0].ShareSum.Equal(decimal.NewFromFloat(0.8)))
	assert.Equal(t, day(2024, time.January, 1), violations[0].WindowStart)
	assert.Equal(t, domain.FarFutureEndDate, violations[0].WindowEnd)
}

func TestAuditCityShares_SequentialWindows(t *testing.T) {
	ref := domain.CityRef{CountryID: 1, RegionID: 10, CityID: 100}

	// One window ends where the next begins; the gap in between is uncovered
	// and uncovered intervals are not violations.
	windows := []domain.CityDMAMapping{
		{
			CityRef:            ref,
			DMAID:              7,
			EffectiveStartDate: day(2023, time.January, 1),
			EffectiveEndDate:   day(2024, time.January, 1),
			DMAShare:           decimal.NewFromInt(1),
		},
		{
			CityRef:            ref,
			DMAID:              8,
			EffectiveStartDate: day(2024, time.June, 1),
			EffectiveEndDate:   domain.FarFutureEndDate,
			DMAShare:           decimal.NewFromInt(1),
		},
	}

	violations := auditCityShares(ref, windows)
	assert.Empty(t, violations)
}

func TestAuditCityShares_OverweightInterval(t *testing.T) {
	ref := domain.CityRef{CountryID: 1, RegionID: 10, CityID: 100}

	windows := []domain.CityDMAMapping{
		{
			CityRef:            ref,
			DMAID:              7,
			EffectiveStartDate: day(2024, time.January, 1),
			EffectiveEndDate:   domain.FarFutureEndDate,
			DMAShare:           decimal.NewFromInt(1),
		},
		{
			CityRef:            ref,
			DMAID:              8,
			EffectiveStartDate: day(2024, time.June, 1),
			EffectiveEndDate:   day(2024, time.December, 1),
			DMAShare:           decimal.NewFromFloat(0.5),
		},
	}

	violations := auditCityShares(ref, windows)
	require.Len(t, violations, 1)
	assert.Equal(t, day(2024, time.June, 1), violations[0].WindowStart)
	assert.Equal(t, day(2024, time.December, 1), violations[0].WindowEnd)
	assert.True(t, violations[0].ShareSum.Equal(decimal.NewFromFloat(1.5)))
}

func TestValidateShare(t *testing.T) {
	tests := []struct {
		name    string
		share   decimal.Decimal
		wantErr bool
	}{
		{name: "full share", share: decimal.NewFromInt(1)},
		{name: "fractional share", share: decimal.NewFromFloat(0.35)},
		{name: "zero", share: decimal.Zero, wantErr: true},
		{name: "negative", share: decimal.NewFromFloat(-0.1), wantErr: true},
		{name: "above one", share: decimal.NewFromFloat(1.0001), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateShare(tt.share)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_ResolvePostal(t *testing.T) {
	tests := []struct {
		name       string
		postalCode string
		stateCode  string
		setup      func(*mocks.MockDimensionRepository, *mocks.MockCityDMARepository)
		wantCityID *int
		wantErr    error
	}{
		{
			name:       "already resolved mapping is returned as is",
			postalCode: "90001",
			stateCode:  "CA",
			setup: func(dims *mocks.MockDimensionRepository, cityDMA *mocks.MockCityDMARepository) {
				cityDMA.EXPECT().GetPostalMapping(gomock.Any(), "90001", "CA").Return(&domain.PostalCityMapping{
					ID:         1,
					PostalCode: "90001",
					CityName:   "Los Angeles",
					StateCode:  "CA",
					CityID:     intPtr(100),
				}, nil)
			},
			wantCityID: intPtr(100),
		},
		{
			name:       "unresolved mapping gets backfilled when the city exists",
			postalCode: "93301",
			stateCode:  "CA",
			setup: func(dims *mocks.MockDimensionRepository, cityDMA *mocks.MockCityDMARepository) {
				cityDMA.EXPECT().GetPostalMapping(gomock.Any(), "93301", "CA").Return(&domain.PostalCityMapping{
					ID:         2,
					PostalCode: "93301",
					CityName:   "Bakersfield",
					StateCode:  "CA",
				}, nil)
				dims.EXPECT().LookupCityRef(gomock.Any(), domain.CityNaturalKey{
					CountryISO2: "US",
					RegionName:  "CA",
					CityName:    "Bakersfield",
				}).Return(domain.CityRef{CountryID: 1, RegionID: 10, CityID: 101}, nil)
				cityDMA.EXPECT().BackfillPostalCityID(gomock.Any(), 2, 101).Return(nil)
			},
			wantCityID: intPtr(101),
		},
		{
			name:       "city still unknown stays unresolved",
			postalCode: "93301",
			stateCode:  "CA",
			setup: func(dims *mocks.MockDimensionRepository, cityDMA *mocks.MockCityDMARepository) {
				cityDMA.EXPECT().GetPostalMapping(gomock.Any(), "93301", "CA").Return(&domain.PostalCityMapping{
					ID:         2,
					PostalCode: "93301",
					CityName:   "Bakersfield",
					StateCode:  "CA",
				}, nil)
				dims.EXPECT().LookupCityRef(gomock.Any(), gomock.Any()).
					Return(domain.CityRef{}, domain.NewWarehouseError("lookup city", domain.ErrNotFound, ""))
			},
			wantCityID: nil,
		},
		{
			name:       "unknown postal code",
			postalCode: "00000",
			stateCode:  "CA",
			setup: func(dims *mocks.MockDimensionRepository, cityDMA *mocks.MockCityDMARepository) {
				cityDMA.EXPECT().GetPostalMapping(gomock.Any(), "00000", "CA").
					Return(nil, domain.NewWarehouseError("lookup postal mapping", domain.ErrNotFound, ""))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:      "postal code is required",
			stateCode: "CA",
			setup:     func(dims *mocks.MockDimensionRepository, cityDMA *mocks.MockCityDMARepository) {},
			wantErr:   domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDims := mocks.NewMockDimensionRepository(ctrl)
			mockCityDMA := mocks.NewMockCityDMARepository(ctrl)
			tt.setup(mockDims, mockCityDMA)

			service := NewService(mockDims, mockCityDMA)
			mapping, err := service.ResolvePostal(context.Background(), tt.postalCode, tt.stateCode)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, mapping)
			if tt.wantCityID == nil {
				assert.Nil(t, mapping.CityID)
				return
			}
			require.NotNil(t, mapping.CityID)
			assert.Equal(t, *tt.wantCityID, *mapping.CityID)
		})
	}
}

func TestService_RegisterPostalMapping(t *testing.T) {
	t.Run("resolves the city up front when it exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockCityDMA := mocks.NewMockCityDMARepository(ctrl)

		mockDims.EXPECT().LookupCityRef(gomock.Any(), domain.CityNaturalKey{
			CountryISO2: "US",
			RegionName:  "CA",
			CityName:    "Los Angeles",
		}).Return(domain.CityRef{CountryID: 1, RegionID: 10, CityID: 100}, nil)

		mockCityDMA.EXPECT().CreatePostalMapping(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.PostalCityMapping) (int, error) {
				require.NotNil(t, m.CityID)
				assert.Equal(t, 100, *m.CityID)
				return 5, nil
			})

		service := NewService(mockDims, mockCityDMA)
		id, err := service.RegisterPostalMapping(context.Background(), &domain.PostalCityMapping{
			PostalCode: "90001",
			CityName:   "Los Angeles",
			StateCode:  "CA",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, id)
	})

	t.Run("unknown city registers unresolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDims := mocks.NewMockDimensionRepository(ctrl)
		mockCityDMA := mocks.NewMockCityDMARepository(ctrl)

		mockDims.EXPECT().LookupCityRef(gomock.Any(), gomock.Any()).
			Return(domain.CityRef{}, domain.NewWarehouseError("lookup city", domain.ErrNotFound, ""))
		mockCityDMA.EXPECT().CreatePostalMapping(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.PostalCityMapping) (int, error) {
				assert.Nil(t, m.CityID)
				return 6, nil
			})

		service := NewService(mockDims, mockCityDMA)
		_, err := service.RegisterPostalMapping(context.Background(), &domain.PostalCityMapping{
			PostalCode: "93301",
			CityName:   "Bakersfield",
			StateCode:  "CA",
		})
		assert.NoError(t, err)
	})

	t.Run("natural key fields are required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockDimensionRepository(ctrl), mocks.NewMockCityDMARepository(ctrl))
		_, err := service.RegisterPostalMapping(context.Background(), &domain.PostalCityMapping{
			PostalCode: "93301",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func intPtr(i int) *int {
	return &i
}
