package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsuite/backend/internal/domain/shared"
)

func TestResolvePeriod_Today(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-15 23:30 UTC is still 2024-03-15 in New York.
	now := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)

	window, err := ResolvePeriod(PeriodToday, now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), window.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, loc), window.End)
	assert.True(t, window.IsSingleDay())
	assert.Equal(t, 1, window.Days())
}

func TestResolvePeriod_ThisMonth(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantDays  int
	}{
		{
			name:      "31 day month",
			now:       time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  31,
		},
		{
			name:      "leap February",
			now:       time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  29,
		},
		{
			name:      "non-leap February",
			now:       time.Date(2023, 2, 10, 10, 0, 0, 0, time.UTC),
			wantStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ResolvePeriod(PeriodThisMonth, tt.now, time.UTC)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, tt.wantEnd, window.End)
			assert.Equal(t, tt.wantDays, window.Days())
		})
	}
}

func TestResolvePeriod_LastMonth(t *testing.T) {
	t.Run("mid year", func(t *testing.T) {
		now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

		window, err := ResolvePeriod(PeriodLastMonth, now, time.UTC)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), window.Start)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), window.End)
	})

	t.Run("rolls back across the year boundary", func(t *testing.T) {
		now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

		window, err := ResolvePeriod(PeriodLastMonth, now, time.UTC)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), window.Start)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), window.End)
	})
}

func TestResolvePeriod_UnknownSelector(t *testing.T) {
	_, err := ResolvePeriod(PeriodSelector("this_year"), time.Now(), time.UTC)

	assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
}

func TestPeriodWindow_Contains(t *testing.T) {
	window := PeriodWindow{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, window.Contains(window.Start), "start bound is inclusive")
	assert.True(t, window.Contains(time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, window.Contains(window.End), "end bound is exclusive")
	assert.False(t, window.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
}

func TestPeriodSelector_IsValid(t *testing.T) {
	assert.True(t, PeriodToday.IsValid())
	assert.True(t, PeriodThisMonth.IsValid())
	assert.True(t, PeriodLastMonth.IsValid())
	assert.False(t, PeriodSelector("yesterday").IsValid())
	assert.False(t, PeriodSelector("").IsValid())
}
