package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"topo-schedule/internal/config"
	"topo-schedule/internal/ingest"
	"topo-schedule/internal/logger"
	"topo-schedule/internal/routes"
	"topo-schedule/internal/services"
)

func main() {
	cfg := config.Load()
	logr := logger.New(cfg)
	defer logr.Sync()

	dataset := loadFlows(cfg, logr)
	gen := services.NewRandomGenerator(cfg.ElementsPerType, cfg.GeneratorSeed)

	r := routes.NewRouter(cfg, logr, dataset, gen)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Info("server started", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logr.Fatal("server forced to shutdown", zap.Error(err))
	}

	logr.Info("server exited gracefully")
}

// loadFlows never fails startup: a broken source leaves the service on an
// empty dataset and every flow view reports no data.
func loadFlows(cfg *config.Config, logr *logger.Logger) *services.FlowDataset {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	raw, err := ingest.Load(ctx, cfg)
	if err != nil {
		logr.Error("failed to read flow data, continuing with empty dataset",
			zap.String("source", cfg.FlowSource), zap.Error(err))
		return services.EmptyFlowDataset()
	}

	ds, err := services.LoadFlowDataset(raw)
	if err != nil {
		logr.Error("flow data rejected, continuing with empty dataset", zap.Error(err))
		return services.EmptyFlowDataset()
	}

	logr.Info("flow data loaded",
		zap.String("source", cfg.FlowSource),
		zap.Int("rows", ds.Len()),
		zap.Int("columns", len(ds.Columns())))
	return ds
}
