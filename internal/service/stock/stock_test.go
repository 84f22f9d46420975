package stock

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazraa/farmbook/internal/domain/models"
)

func purchase(feedType string, qty int64, unit string, day int) models.FeedPurchase {
	return models.FeedPurchase{
		FeedType: feedType,
		Quantity: decimal.NewFromInt(qty),
		Unit:     unit,
		Date:     models.NewDate(2024, time.June, day),
	}
}

func consumption(feedType string, qty int64, day int) models.FeedConsumption {
	return models.FeedConsumption{
		FeedType: feedType,
		Quantity: decimal.NewFromInt(qty),
		Date:     models.NewDate(2024, time.June, day),
	}
}

func TestLevelsPurchaseMinusConsumption(t *testing.T) {
	// Buy 10 bran, use 3: 7 left.
	levels := Levels(
		[]models.FeedPurchase{purchase("bran", 10, "sack", 1)},
		[]models.FeedConsumption{consumption("bran", 3, 2)},
	)

	require.Contains(t, levels, "bran")
	assert.True(t, levels["bran"].Quantity.Equal(decimal.NewFromInt(7)), "bran = %s", levels["bran"].Quantity)
}

func TestLevelsSumAcrossEntries(t *testing.T) {
	levels := Levels(
		[]models.FeedPurchase{
			purchase("bran", 10, "sack", 1),
			purchase("silage", 4, "ton", 2),
			purchase("bran", 5, "sack", 3),
		},
		[]models.FeedConsumption{
			consumption("bran", 2, 4),
			consumption("bran", 1, 5),
		},
	)

	assert.True(t, levels["bran"].Quantity.Equal(decimal.NewFromInt(12)))
	assert.True(t, levels["silage"].Quantity.Equal(decimal.NewFromInt(4)))
}

func TestLevelsConsumptionOnlyTypeStillAppears(t *testing.T) {
	// Feed that was never logged as purchased must not vanish from the
	// ledger; it shows up with a negative balance.
	levels := Levels(nil, []models.FeedConsumption{consumption("hay", 6, 1)})

	require.Contains(t, levels, "hay")
	assert.True(t, levels["hay"].Quantity.Equal(decimal.NewFromInt(-6)), "hay = %s", levels["hay"].Quantity)
	assert.Empty(t, levels["hay"].Unit)
}

func TestLevelsUnitFromMostRecentPurchase(t *testing.T) {
	levels := Levels(
		[]models.FeedPurchase{
			purchase("bran", 10, "sack", 1),
			purchase("bran", 2, "kg", 20),
			purchase("bran", 3, "bag", 10),
		},
		nil,
	)

	assert.Equal(t, "kg", levels["bran"].Unit)
}

func TestLevelsEmptyInputs(t *testing.T) {
	assert.Empty(t, Levels(nil, nil))
}
