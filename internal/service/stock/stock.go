// Package stock derives the current feed balance per feed type from the
// purchase and consumption logs.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/mazraa/farmbook/internal/domain/models"
)

// Level is the on-hand balance of one feed type. Unit is a display label
// taken from the most recent purchase of the type; purchases are not
// validated for unit consistency, so it is best effort.
type Level struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
}

// Levels computes purchases minus consumption per feed type. Types that only
// ever appear in consumption still show up, with a negative balance; absence
// from the purchase log must not hide feed that has been used.
func Levels(purchases []models.FeedPurchase, consumption []models.FeedConsumption) map[string]Level {
	levels := make(map[string]Level)

	lastPurchase := make(map[string]models.Date)

	for _, p := range purchases {
		lvl := levels[p.FeedType]
		lvl.Quantity = lvl.Quantity.Add(p.Quantity)
		if last, seen := lastPurchase[p.FeedType]; !seen || !p.Date.Before(last) {
			lvl.Unit = p.Unit
			lastPurchase[p.FeedType] = p.Date
		}
		levels[p.FeedType] = lvl
	}

	for _, c := range consumption {
		lvl := levels[c.FeedType]
		lvl.Quantity = lvl.Quantity.Sub(c.Quantity)
		levels[c.FeedType] = lvl
	}

	return levels
}
