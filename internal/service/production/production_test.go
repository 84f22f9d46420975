package production

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazraa/farmbook/internal/domain/models"
)

func entry(date models.Date, session models.MilkSession, amount int64) models.MilkEntry {
	return models.MilkEntry{Amount: decimal.NewFromInt(amount), Session: session, Date: date}
}

func TestDailyZeroFillsSparseWindow(t *testing.T) {
	asOf := models.NewDate(2024, time.June, 10)
	entries := []models.MilkEntry{
		entry(asOf.AddDays(-6), models.SessionMorning, 12),
		entry(asOf, models.SessionEvening, 9),
	}

	days := Daily(entries, 7, asOf)

	require.Len(t, days, 7)
	assert.True(t, days[0].Total.Equal(decimal.NewFromInt(12)))
	assert.True(t, days[6].Total.Equal(decimal.NewFromInt(9)))
	for i := 1; i < 6; i++ {
		assert.True(t, days[i].Total.IsZero(), "day %d = %s", i, days[i].Total)
	}
}

func TestDailyAscendingChronology(t *testing.T) {
	asOf := models.NewDate(2024, time.June, 10)

	days := Daily(nil, 7, asOf)

	require.Len(t, days, 7)
	assert.Equal(t, "2024-06-04", days[0].Date.String())
	assert.Equal(t, "2024-06-10", days[6].Date.String())
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Date.Before(days[i].Date))
	}
}

func TestDailySumsSessionsAndDuplicates(t *testing.T) {
	asOf := models.NewDate(2024, time.June, 10)
	entries := []models.MilkEntry{
		entry(asOf, models.SessionMorning, 10),
		entry(asOf, models.SessionEvening, 8),
		// A duplicate morning entry is summed, not merged.
		entry(asOf, models.SessionMorning, 2),
	}

	days := Daily(entries, 1, asOf)

	require.Len(t, days, 1)
	assert.True(t, days[0].Total.Equal(decimal.NewFromInt(20)), "total = %s", days[0].Total)
}

func TestDailyIgnoresEntriesOutsideWindow(t *testing.T) {
	asOf := models.NewDate(2024, time.June, 10)
	entries := []models.MilkEntry{
		entry(asOf.AddDays(-7), models.SessionMorning, 99), // one day too old
		entry(asOf.AddDays(1), models.SessionMorning, 99),  // in the future
	}

	days := Daily(entries, 7, asOf)

	for _, d := range days {
		assert.True(t, d.Total.IsZero())
	}
}

func TestDailyRecomputationIsIdempotent(t *testing.T) {
	asOf := models.NewDate(2024, time.June, 10)
	entries := []models.MilkEntry{
		entry(asOf.AddDays(-2), models.SessionMorning, 7),
		entry(asOf, models.SessionEvening, 5),
	}

	first := Daily(entries, 7, asOf)
	second := Daily(entries, 7, asOf)
	assert.Equal(t, first, second)
}

func TestDailyNonPositiveWindow(t *testing.T) {
	assert.Empty(t, Daily(nil, 0, models.NewDate(2024, time.June, 10)))
	assert.Empty(t, Daily(nil, -3, models.NewDate(2024, time.June, 10)))
}
