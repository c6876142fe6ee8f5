package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lightningnetwork/lnd/kvdb"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/diag"
	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/relayer/bootstrap"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/relayer/store"
	"github.com/bifrost-platform/btc-relayer/types"
)

// RelayerApp runs one outbound handler per managed chain. The handlers share
// a bootstrap barrier so that no chain streams live events before every
// chain replayed its window.
type RelayerApp struct {
	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
	quit      chan struct{}
	cancel    context.CancelFunc

	config   *config.Config
	clients  map[types.ChainID]api.ChainClient
	chainIDs []types.ChainID
	barrier  *bootstrap.Barrier
	pollers  map[types.ChainID]*EventPoller
	handlers []*OutboundHandler
	journal  *store.SubmissionStore
	reporter diag.Reporter
	metrics  *metrics.RelayerMetrics
	logger   *zap.Logger

	criticalErrChan chan *CriticalError
	errChan         chan error
}

func NewRelayerApp(
	cfg *config.Config,
	clients []api.ChainClient,
	db kvdb.Backend,
	reporter diag.Reporter,
	metrics *metrics.RelayerMetrics,
	logger *zap.Logger,
) (*RelayerApp, error) {
	if len(clients) == 0 {
		return nil, fmt.Errorf("no chain client is given")
	}

	journal, err := store.NewSubmissionStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate submission store: %w", err)
	}

	systemClients := make(map[types.ChainID]api.ChainClient, len(clients))
	chainIDs := make([]types.ChainID, 0, len(clients))
	var native api.ChainClient
	for _, cc := range clients {
		if _, ok := systemClients[cc.ChainID()]; ok {
			return nil, fmt.Errorf("duplicate client of chain %s", cc.ChainID())
		}
		systemClients[cc.ChainID()] = cc
		chainIDs = append(chainIDs, cc.ChainID())
		if cc.IsNative() {
			native = cc
		}
	}
	sort.Slice(chainIDs, func(i, j int) bool { return chainIDs[i] < chainIDs[j] })

	// the relayer rotation is only recorded on the native chain
	if native == nil {
		return nil, ErrNoNativeChain
	}

	barrier, err := bootstrap.NewBarrier(chainIDs, types.NodeSyncing)
	if err != nil {
		return nil, fmt.Errorf("failed to create the bootstrap barrier: %w", err)
	}

	relayerGate := NewRelayerGate(native, native.Address())

	pollers := make(map[types.ChainID]*EventPoller, len(clients))
	handlers := make([]*OutboundHandler, 0, len(clients))
	for _, id := range chainIDs {
		cc := systemClients[id]
		poller := NewEventPoller(logger, cfg.PollerConfig, cc, metrics)
		pollers[id] = poller
		handlers = append(handlers, NewOutboundHandler(
			cfg,
			cc,
			systemClients,
			barrier,
			poller.GetEventChan(),
			relayerGate,
			AlwaysSelected,
			journal,
			reporter,
			metrics,
			logger,
		))
	}

	return &RelayerApp{
		config:          cfg,
		clients:         systemClients,
		chainIDs:        chainIDs,
		barrier:         barrier,
		pollers:         pollers,
		handlers:        handlers,
		journal:         journal,
		reporter:        reporter,
		metrics:         metrics,
		logger:          logger,
		quit:            make(chan struct{}),
		criticalErrChan: make(chan *CriticalError),
		errChan:         make(chan error, 1),
	}, nil
}

func (app *RelayerApp) GetConfig() *config.Config {
	return app.config
}

func (app *RelayerApp) GetSubmissionStore() *store.SubmissionStore {
	return app.journal
}

func (app *RelayerApp) GetBarrier() *bootstrap.Barrier {
	return app.barrier
}

func (app *RelayerApp) Logger() *zap.Logger {
	return app.logger
}

// Err returns a channel receiving the first critical error of any handler
func (app *RelayerApp) Err() <-chan error {
	return app.errChan
}

// Start runs the handlers. The pollers only start once every chain finished
// its bootstrap replay, each one right after the window its chain replayed.
func (app *RelayerApp) Start(ctx context.Context) error {
	app.startOnce.Do(func() {
		app.logger.Info("Starting RelayerApp", zap.Int("chains", len(app.chainIDs)))

		runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		app.cancel = cancel

		app.wg.Add(3 + len(app.handlers))
		go app.monitorCriticalErr()
		go app.waitForNodeSync(runCtx)
		go app.startPollersOnStreaming(runCtx)
		for _, h := range app.handlers {
			go app.runHandler(runCtx, h)
		}
	})

	return nil
}

func (app *RelayerApp) Stop() error {
	var stopErr error
	app.stopOnce.Do(func() {
		app.logger.Info("Stopping RelayerApp")

		close(app.quit)
		if app.cancel != nil {
			app.cancel()
		}

		// no poller is started once the goroutines returned
		app.wg.Wait()

		for _, id := range app.chainIDs {
			if err := app.pollers[id].Stop(); err != nil && !errors.Is(err, ErrPollerStopped) {
				stopErr = fmt.Errorf("failed to stop the event poller of chain %s: %w", id, err)
			}
		}

		for _, id := range app.chainIDs {
			if err := app.clients[id].Close(); err != nil {
				app.logger.Warn("failed to close the chain client", zap.Stringer("chain_id", id), zap.Error(err))
			}
		}

		app.reporter.Close()

		app.logger.Debug("RelayerApp successfully stopped")
	})

	return stopErr
}

// startPollersOnStreaming starts the live event stream of every chain once
// the barrier flipped to NormalStart
func (app *RelayerApp) startPollersOnStreaming(ctx context.Context) {
	defer app.wg.Done()

	select {
	case <-app.barrier.Done():
	case <-app.quit:
		return
	}

	if criticalErr := app.startPollers(ctx); criticalErr != nil {
		app.reportCriticalErr(criticalErr)
	}
}

// startPollers starts each poller after the replayed window of its chain, or
// after the current tip when the chain replayed nothing. On failure the
// pollers started so far are stopped again.
func (app *RelayerApp) startPollers(ctx context.Context) *CriticalError {
	for i, id := range app.chainIDs {
		startHeight, ok := app.handlers[i].StreamStartHeight()
		if !ok {
			latest, err := app.clients[id].LatestBlockNumber(ctx)
			if err != nil {
				app.stopPollers(app.chainIDs[:i])

				return &CriticalError{
					err:     fmt.Errorf("failed to query the latest block: %w", err),
					chainID: id,
				}
			}
			startHeight = latest + 1
		}

		if err := app.pollers[id].Start(startHeight); err != nil {
			app.stopPollers(app.chainIDs[:i])

			return &CriticalError{
				err:     fmt.Errorf("failed to start the event poller: %w", err),
				chainID: id,
			}
		}
	}

	return nil
}

func (app *RelayerApp) stopPollers(ids []types.ChainID) {
	for _, id := range ids {
		if err := app.pollers[id].Stop(); err != nil && !errors.Is(err, ErrPollerStopped) {
			app.logger.Warn("failed to stop the event poller", zap.Stringer("chain_id", id), zap.Error(err))
		}
	}
}

func (app *RelayerApp) runHandler(ctx context.Context, h *OutboundHandler) {
	defer app.wg.Done()

	if err := h.Run(ctx); err != nil {
		app.reportCriticalErr(&CriticalError{err: err, chainID: h.ChainID()})
	}
}

func (app *RelayerApp) reportCriticalErr(criticalErr *CriticalError) {
	select {
	case app.criticalErrChan <- criticalErr:
	case <-app.quit:
	}
}

// waitForNodeSync moves every handler to the bootstrap phase once no managed
// node reports syncing
func (app *RelayerApp) waitForNodeSync(ctx context.Context) {
	defer app.wg.Done()

	for {
		syncing, err := app.anyNodeSyncing(ctx)
		if err != nil {
			app.logger.Debug("failed to query the sync status of the nodes", zap.Error(err))
		} else if !syncing {
			if _, err := app.barrier.Transition(types.NodeSyncing, types.BootstrapInProgress); err != nil {
				app.logger.Error("failed to start the bootstrap phase", zap.Error(err))
			}
			app.logger.Info("every node is synced, starting the bootstrap phase")

			return
		}

		select {
		case <-time.After(app.config.CallInterval):
		case <-app.quit:
			return
		}
	}
}

func (app *RelayerApp) anyNodeSyncing(ctx context.Context) (bool, error) {
	for _, id := range app.chainIDs {
		syncing, err := app.clients[id].IsSyncing(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to query the sync status of chain %s: %w", id, err)
		}
		if syncing {
			app.logger.Debug("node is still syncing", zap.Stringer("chain_id", id))

			return true, nil
		}
	}

	return false, nil
}

// monitorCriticalErr surfaces the first critical error through Err. Later
// ones are only logged.
func (app *RelayerApp) monitorCriticalErr() {
	defer app.wg.Done()

	for {
		select {
		case criticalErr := <-app.criticalErrChan:
			app.logger.Error(handlerTerminatingMsg,
				zap.Stringer("chain_id", criticalErr.chainID), zap.Error(criticalErr.err))
			app.reporter.CaptureMessage(criticalErr.Error(), diag.LevelError, map[string]string{
				"chain_id": criticalErr.chainID.String(),
			})

			select {
			case app.errChan <- criticalErr:
			default:
			}
		case <-app.quit:
			app.logger.Info("exiting monitor critical error loop")

			return
		}
	}
}
