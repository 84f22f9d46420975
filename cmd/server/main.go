package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mazraa/farmbook/internal/config"
	"github.com/mazraa/farmbook/internal/repository/kv"
	"github.com/mazraa/farmbook/internal/scheduler"
	"github.com/mazraa/farmbook/internal/server/handlers"
	"github.com/mazraa/farmbook/internal/server/router"
	"github.com/mazraa/farmbook/internal/store"
	"github.com/mazraa/farmbook/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Debug))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	medium, err := kv.OpenSQLite(cfg.Storage.DSN, baseLogger.Named("repo.kv"))
	if err != nil {
		baseLogger.Fatal("failed to open storage", zap.Error(err))
	}
	defer func() {
		if err := medium.Close(); err != nil {
			baseLogger.Error("failed to close storage", zap.Error(err))
		}
	}()

	// A broken or missing state file degrades to empty collections; startup
	// must not crash on bad state.
	recordStore := store.Load(context.Background(), medium, baseLogger.Named("store"))

	h := handlers.New(recordStore, baseLogger.Named("handlers"))
	engine := router.New(h, baseLogger.Named("router"))

	sched := scheduler.New(cfg.Digest, recordStore, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
