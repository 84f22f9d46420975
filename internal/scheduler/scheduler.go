// Package scheduler runs the recurring morning digest: a scan of the herd
// and the feed ledger, logged so the farmer sees the day's findings at
// startup of the workday. The computation core itself stays timer-free.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mazraa/farmbook/internal/config"
	"github.com/mazraa/farmbook/internal/domain/models"
	"github.com/mazraa/farmbook/internal/service/alerts"
	"github.com/mazraa/farmbook/internal/service/stock"
	"github.com/mazraa/farmbook/internal/store"
)

// Scheduler manages the digest cron job.
type Scheduler struct {
	cron   *cron.Cron
	store  *store.Store
	cfg    config.DigestConfig
	logger *zap.Logger
}

// New creates a scheduler for the given store and digest configuration.
func New(cfg config.DigestConfig, st *store.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("unknown timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:   cron.New(opts...),
		store:  st,
		cfg:    cfg,
		logger: logger,
	}
}

// Start schedules the digest and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting digest scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDigest); err != nil {
		s.logger.Error("failed to schedule digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping digest scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDigest() {
	snap := s.store.Snapshot()
	today := models.DateOf(time.Now())

	levels := stock.Levels(snap.FeedPurchases, snap.FeedConsumption)
	found := alerts.Scan(snap.Animals, snap.HealthEvents, levels, today)

	if len(found) == 0 {
		s.logger.Info("morning digest: nothing needs attention", zap.String("date", today.String()))
		return
	}

	for _, a := range found {
		s.logger.Info("morning digest alert",
			zap.String("date", today.String()),
			zap.String("severity", string(a.Severity)),
			zap.String("message", a.Message),
			zap.String("metric", a.Metric.String()))
	}
}
