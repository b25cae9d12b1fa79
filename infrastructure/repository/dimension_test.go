package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

func TestCalendarRow(t *testing.T) {
	tests := []struct {
		name        string
		day         time.Time
		wantDateID  int
		wantQuarter int
		wantWeek    int
	}{
		{
			name:        "mid year",
			day:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantDateID:  20240601,
			wantQuarter: 2,
			wantWeek:    22,
		},
		{
			name:        "new year's day falls in the prior iso week",
			day:         time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantDateID:  20230101,
			wantQuarter: 1,
			wantWeek:    52,
		},
		{
			name:        "last day of the year",
			day:         time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			wantDateID:  20241231,
			wantQuarter: 4,
			wantWeek:    1,
		},
		{
			name:        "quarter boundary",
			day:         time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
			wantDateID:  20241001,
			wantQuarter: 4,
			wantWeek:    40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := CalendarRow(tt.day)
			assert.Equal(t, tt.wantDateID, row.DateID)
			assert.Equal(t, tt.wantQuarter, row.Quarter)
			assert.Equal(t, tt.wantWeek, row.Week)
			assert.Equal(t, tt.day.Year(), row.Year)
			assert.Equal(t, int(tt.day.Month()), row.Month)
		})
	}
}

func TestDimensionRepository_PopulateCalendar_ChunksLongRanges(t *testing.T) {
	capture := &execCapture{}
	repo := NewDimensionRepository(capture)

	from := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2499)

	count, err := repo.PopulateCalendar(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 2500, count)

	// 2500 days split into statements of at most calendarChunkDays rows, each
	// row binding 6 parameters.
	require.Len(t, capture.args, 3)
	assert.Len(t, capture.args[0], 6*1000)
	assert.Len(t, capture.args[1], 6*1000)
	assert.Len(t, capture.args[2], 6*500)

	for _, query := range capture.queries {
		assert.Contains(t, query, "ON CONFLICT (date_id) DO NOTHING")
	}
}

func TestDimensionRepository_PopulateCalendar_RejectsInvertedRange(t *testing.T) {
	repo := NewDimensionRepository(&execCapture{})

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.PopulateCalendar(context.Background(), from, from.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
