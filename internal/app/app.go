// Package app wires configuration, the event store and the REST
// controller together and owns the process lifecycle.
package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/skywheel/almanac/internal/controllers/restserver"
	"github.com/skywheel/almanac/internal/eventstore"
	"github.com/skywheel/almanac/internal/log"
	"github.com/skywheel/almanac/pkg/config"
)

// App represents the almanac service.
type App struct {
	configProvider config.Provider
	logger         *zap.SugaredLogger
}

// New creates a new application instance.
func New(configProvider config.Provider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the service and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return err
	}

	store, err := eventstore.Open(cfg.Events.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	rest, err := restserver.NewController(ctx, &wg, cfg, store, a.logger)
	if err != nil {
		return err
	}
	if err := rest.StartController(); err != nil {
		return err
	}

	log.Infof("almanac service started for %s (%.4f, %.4f)",
		cfg.Location.Name, cfg.Location.Latitude, cfg.Location.Longitude)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	cancel()

	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
