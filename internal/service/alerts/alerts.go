// Package alerts scans the herd and the feed ledger and turns anything that
// needs attention into a flat, ordered alert list.
package alerts

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mazraa/farmbook/internal/domain/models"
	"github.com/mazraa/farmbook/internal/service/herd"
	"github.com/mazraa/farmbook/internal/service/stock"
)

// LowStockThreshold is the flat balance at or below which a feed type is
// flagged. It is unit-agnostic: five sacks and five tons trip it alike. A
// per-type threshold would be the obvious refinement.
var LowStockThreshold = decimal.NewFromInt(5)

// criticalDueDays tightens the severity once a birth is nearly due.
const criticalDueDays = 3

// Scan walks the animals first and the stock levels second, in input order,
// and emits one alert per finding. There is no cross-category ranking; the
// scan order is the display order.
func Scan(animals []models.Animal, events []models.HealthEvent, levels map[string]stock.Level, asOf models.Date) []models.Alert {
	var out []models.Alert

	for _, a := range animals {
		out = append(out, animalAlerts(a, events, asOf)...)
	}
	out = append(out, stockAlerts(levels)...)
	return out
}

func animalAlerts(a models.Animal, events []models.HealthEvent, asOf models.Date) []models.Alert {
	var out []models.Alert
	label := animalLabel(a)

	repro := herd.Reproduction(a, asOf)
	if repro.BirthDue {
		severity := models.SeverityWarning
		if repro.DaysToDue <= criticalDueDays {
			severity = models.SeverityCritical
		}
		out = append(out, models.Alert{
			Message:  fmt.Sprintf("%s is due to calve in %d days (%s)", label, repro.DaysToDue, repro.DueDate),
			Severity: severity,
			Metric:   decimal.NewFromInt(int64(repro.DaysToDue)),
		})
	}
	if repro.CheckWindowOpen {
		out = append(out, models.Alert{
			Message:  fmt.Sprintf("%s is due for a pregnancy check", label),
			Severity: models.SeverityInfo,
			Metric:   decimal.NewFromInt(int64(herd.PregnancyCheckDay)),
		})
	}

	if w := herd.Withdrawal(a.ID, events, asOf); w.Unsafe {
		out = append(out, models.Alert{
			Message:  fmt.Sprintf("milk from %s is unsafe for %d more days (withdrawal period)", label, w.DaysRemaining),
			Severity: models.SeverityWarning,
			Metric:   decimal.NewFromInt(int64(w.DaysRemaining)),
		})
	}

	return out
}

func stockAlerts(levels map[string]stock.Level) []models.Alert {
	// Map iteration order is random; sort the feed types so repeated scans
	// of the same snapshot return identical lists.
	types := make([]string, 0, len(levels))
	for feedType := range levels {
		types = append(types, feedType)
	}
	sort.Strings(types)

	var out []models.Alert
	for _, feedType := range types {
		lvl := levels[feedType]
		if lvl.Quantity.GreaterThan(LowStockThreshold) {
			continue
		}
		severity := models.SeverityWarning
		if lvl.Quantity.IsNegative() {
			severity = models.SeverityCritical
		}
		remaining := lvl.Quantity.String()
		if lvl.Unit != "" {
			remaining += " " + lvl.Unit
		}
		out = append(out, models.Alert{
			Message:  fmt.Sprintf("feed %q is low: %s left", feedType, remaining),
			Severity: severity,
			Metric:   lvl.Quantity,
		})
	}
	return out
}

func animalLabel(a models.Animal) string {
	if a.Name != "" {
		return fmt.Sprintf("#%s %s", a.Tag, a.Name)
	}
	return "#" + a.Tag
}
