package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/lightningnetwork/lnd/kvdb"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
)

// Server is the main daemon construct of the relayer. It owns the lifetime
// of the app, the metrics server and the database.
type Server struct {
	started int32

	cfg      *config.Config
	logger   *zap.Logger
	app      *RelayerApp
	db       kvdb.Backend
	gatherer prometheus.Gatherer
}

func NewRelayerServer(cfg *config.Config, l *zap.Logger, app *RelayerApp, db kvdb.Backend, gatherer prometheus.Gatherer) *Server {
	return &Server{
		cfg:      cfg,
		logger:   l,
		app:      app,
		db:       db,
		gatherer: gatherer,
	}
}

// RunUntilShutdown runs the relayer until ctx is cancelled or a handler hits
// a critical error, which is then returned.
func (s *Server) RunUntilShutdown(ctx context.Context) error {
	if atomic.AddInt32(&s.started, 1) != 1 {
		return nil
	}

	promAddr, err := s.cfg.Metrics.Address()
	if err != nil {
		return fmt.Errorf("failed to get prometheus address: %w", err)
	}
	metricsServer := metrics.Start(promAddr, s.gatherer, s.logger)

	defer func() {
		s.logger.Info("Shutdown complete")
	}()

	defer func() {
		s.logger.Info("Closing database...")
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database", zap.Error(err))
		} else {
			s.logger.Info("Database closed")
		}
		if err := metricsServer.Shutdown(context.Background()); err != nil {
			s.logger.Error("Failed to stop metrics server", zap.Error(err))
		}
		s.logger.Info("Metrics server stopped")
	}()

	if err := s.app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start the relayer app: %w", err)
	}
	defer func() {
		if err := s.app.Stop(); err != nil {
			s.logger.Error("Failed to stop the relayer app", zap.Error(err))
		}
	}()

	s.logger.Info("Relayer Daemon is fully active!")

	select {
	case <-ctx.Done():
		return nil
	case err := <-s.app.Err():
		return err
	}
}
