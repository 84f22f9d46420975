// Package production buckets milk entries by day for trend display.
package production

import (
	"github.com/shopspring/decimal"

	"github.com/mazraa/farmbook/internal/domain/models"
)

// DailyTotal is the summed yield of one calendar day.
type DailyTotal struct {
	Date  models.Date     `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// Daily returns exactly windowDays buckets, one per calendar day, ending at
// asOf inclusive, in ascending date order. Days without entries carry a zero
// total; entries for the same day and session are summed, duplicates
// included. The strict ordering is what the trend chart relies on.
func Daily(entries []models.MilkEntry, windowDays int, asOf models.Date) []DailyTotal {
	if windowDays <= 0 {
		return []DailyTotal{}
	}

	start := asOf.AddDays(-(windowDays - 1))

	byDay := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.Date.Before(start) || e.Date.After(asOf) {
			continue
		}
		key := e.Date.String()
		byDay[key] = byDay[key].Add(e.Amount)
	}

	out := make([]DailyTotal, 0, windowDays)
	for day := start; !day.After(asOf); day = day.AddDays(1) {
		out = append(out, DailyTotal{Date: day, Total: byDay[day.String()]})
	}
	return out
}
