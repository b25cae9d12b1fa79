package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mapping(start, end time.Time) CityDMAMapping {
	return CityDMAMapping{
		CityRef:            CityRef{CountryID: 1, RegionID: 10, CityID: 100},
		DMAID:              7,
		EffectiveStartDate: start,
		EffectiveEndDate:   end,
		DMAShare:           decimal.NewFromInt(1),
	}
}

func TestCityDMAMapping_ActiveOn(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	m := mapping(start, end)

	tests := []struct {
		name     string
		day      time.Time
		expected bool
	}{
		{name: "start day is covered", day: start, expected: true},
		{name: "mid window", day: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "end day is excluded", day: end, expected: false},
		{name: "before the window", day: start.AddDate(0, 0, -1), expected: false},
		{name: "day before end", day: end.AddDate(0, 0, -1), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.ActiveOn(tt.day))
		})
	}
}

func TestCityDMAMapping_Overlaps(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	m := mapping(start, end)

	tests := []struct {
		name       string
		start, end time.Time
		expected   bool
	}{
		{
			name:     "identical range",
			start:    start,
			end:      end,
			expected: true,
		},
		{
			name:     "partial overlap at the tail",
			start:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "adjacent range starting at the end does not overlap",
			start:    end,
			end:      time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "adjacent range ending at the start does not overlap",
			start:    time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
			end:      start,
			expected: false,
		},
		{
			name:     "containing range",
			start:    time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Overlaps(tt.start, tt.end))
		})
	}
}

func TestCityDMAMapping_IsOpen(t *testing.T) {
	open := mapping(DefaultEffectiveStart, FarFutureEndDate)
	closed := mapping(DefaultEffectiveStart, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, open.IsOpen())
	assert.False(t, closed.IsOpen())
}
