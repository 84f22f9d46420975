package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mazraa/farmbook/internal/config"
	"github.com/mazraa/farmbook/internal/domain/models"
	"github.com/mazraa/farmbook/internal/repository/kv"
	"github.com/mazraa/farmbook/internal/store"
)

func digestConfig() config.DigestConfig {
	return config.DigestConfig{CronSchedule: "0 6 * * *", Timezone: "UTC"}
}

func newDigestStore(t *testing.T) *store.Store {
	t.Helper()
	medium, err := kv.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = medium.Close() })
	return store.Load(context.Background(), medium, nil)
}

func TestDigestLogsLowStockAlert(t *testing.T) {
	st := newDigestStore(t)

	_, err := st.AddFeedPurchase(context.Background(), models.FeedPurchase{
		FeedType:  "bran",
		Quantity:  decimal.NewFromInt(2),
		Unit:      "sack",
		UnitPrice: decimal.NewFromInt(50),
		Date:      models.NewDate(2024, time.June, 1),
	})
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	sched := New(digestConfig(), st, zap.New(core))

	sched.runDigest()

	entries := logs.FilterMessage("morning digest alert").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["message"], "bran")
}

func TestDigestQuietWhenNothingNeedsAttention(t *testing.T) {
	st := newDigestStore(t)

	core, logs := observer.New(zap.InfoLevel)
	sched := New(digestConfig(), st, zap.New(core))

	sched.runDigest()

	assert.Zero(t, logs.FilterMessage("morning digest alert").Len())
	assert.Equal(t, 1, logs.FilterMessage("morning digest: nothing needs attention").Len())
}
