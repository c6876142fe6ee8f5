package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/types"
)

var (
	RtyAttNum = uint(5)
	RtyAtt    = retry.Attempts(RtyAttNum)
	RtyDel    = retry.Delay(time.Millisecond * 400)
	RtyErr    = retry.LastErrorOnly(true)
)

// EventSource is the part of a chain client the poller reads from
type EventSource interface {
	api.BlockQuerier
	api.EventFilterer
	ChainID() types.ChainID
}

// EventPoller streams the target events of one chain. Each block holding
// target events is pushed once, in ascending order. The event channel is
// closed when the poller gives up after too many failed cycles.
type EventPoller struct {
	isStarted *atomic.Bool
	wg        sync.WaitGroup
	quit      chan struct{}
	cancel    context.CancelFunc

	src       EventSource
	cfg       *config.ChainPollerConfig
	metrics   *metrics.RelayerMetrics
	eventChan chan *types.EventMessage

	nextHeight uint64
	mu         sync.RWMutex

	logger *zap.Logger
}

func NewEventPoller(
	logger *zap.Logger,
	cfg *config.ChainPollerConfig,
	src EventSource,
	metrics *metrics.RelayerMetrics,
) *EventPoller {
	return &EventPoller{
		isStarted: atomic.NewBool(false),
		logger:    logger.With(zap.Stringer("chain_id", src.ChainID())),
		cfg:       cfg,
		src:       src,
		metrics:   metrics,
		eventChan: make(chan *types.EventMessage, cfg.BufferSize),
		quit:      make(chan struct{}),
	}
}

// Start polls from startHeight on
func (ep *EventPoller) Start(startHeight uint64) error {
	if ep.isStarted.Swap(true) {
		return fmt.Errorf("the event poller is already started")
	}

	ep.logger.Info("starting the event poller", zap.Uint64("start_height", startHeight))

	ep.setNextHeight(startHeight)

	ctx, cancel := context.WithCancel(context.Background())
	ep.cancel = cancel

	ep.wg.Add(1)
	go ep.pollEvents(ctx)

	return nil
}

func (ep *EventPoller) Stop() error {
	if !ep.isStarted.Swap(false) {
		return ErrPollerStopped
	}

	ep.logger.Info("stopping the event poller")
	ep.cancel()
	close(ep.quit)
	ep.wg.Wait()

	ep.logger.Info("the event poller is successfully stopped")

	return nil
}

func (ep *EventPoller) IsRunning() bool {
	return ep.isStarted.Load()
}

// GetEventChan returns the read-only channel of imported blocks with target
// events
func (ep *EventPoller) GetEventChan() <-chan *types.EventMessage {
	return ep.eventChan
}

func (ep *EventPoller) NextHeight() uint64 {
	ep.mu.RLock()
	defer ep.mu.RUnlock()

	return ep.nextHeight
}

func (ep *EventPoller) setNextHeight(height uint64) {
	ep.mu.Lock()
	defer ep.mu.Unlock()

	ep.nextHeight = height
}

func (ep *EventPoller) latestBlockWithRetry(ctx context.Context) (uint64, error) {
	var (
		latest uint64
		err    error
	)
	if err := retry.Do(func() error {
		latest, err = ep.src.LatestBlockNumber(ctx)

		return err
	}, RtyAtt, RtyDel, RtyErr, retry.Context(ctx), retry.OnRetry(func(n uint, err error) {
		ep.logger.Debug(
			"failed to query the latest block number",
			zap.Uint("attempt", n+1),
			zap.Uint("max_attempts", RtyAttNum),
			zap.Error(err),
		)
	})); err != nil {
		return 0, err
	}

	return latest, nil
}

func (ep *EventPoller) eventsWithRetry(ctx context.Context, start, end uint64) ([]*types.EventMessage, error) {
	var (
		msgs []*types.EventMessage
		err  error
	)
	if err := retry.Do(func() error {
		msgs, err = ep.src.FilterBlockEvents(ctx, start, end)

		return err
	}, RtyAtt, RtyDel, RtyErr, retry.Context(ctx), retry.OnRetry(func(n uint, err error) {
		ep.logger.Debug(
			"failed to filter the events of the block range",
			zap.Uint("attempt", n+1),
			zap.Uint("max_attempts", RtyAttNum),
			zap.Uint64("start_height", start),
			zap.Uint64("end_height", end),
			zap.Error(err),
		)
	})); err != nil {
		return nil, err
	}

	return msgs, nil
}

// pollOnce pushes the events of the next block range, up to the chain tip
func (ep *EventPoller) pollOnce(ctx context.Context) error {
	latest, err := ep.latestBlockWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("failed to query the latest block: %w", err)
	}

	start := ep.NextHeight()
	if start > latest {
		return nil
	}
	end := latest
	if span := uint64(ep.cfg.PollSize); end-start+1 > span {
		end = start + span - 1
	}

	msgs, err := ep.eventsWithRetry(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to filter events in [%d, %d]: %w", start, end, err)
	}

	for _, msg := range msgs {
		// a slow consumer blocks the poller once the buffer is full
		select {
		case ep.eventChan <- msg:
		case <-ep.quit:
			return nil
		}
	}

	ep.setNextHeight(end + 1)
	ep.metrics.RecordLastPolledBlock(ep.src.ChainID(), end)

	ep.logger.Debug("the poller retrieved the events of the block range",
		zap.Uint64("start_height", start),
		zap.Uint64("end_height", end),
		zap.Int("blocks_with_events", len(msgs)),
	)

	return nil
}

func (ep *EventPoller) pollEvents(ctx context.Context) {
	defer ep.wg.Done()

	var failedCycles uint32

	for {
		if err := ep.pollOnce(ctx); err != nil {
			failedCycles++
			ep.logger.Debug(
				"failed to poll the chain for events",
				zap.Uint32("current_failures", failedCycles),
				zap.Error(err),
			)
		} else {
			failedCycles = 0
		}

		if failedCycles > ep.cfg.MaxFailedCycles {
			ep.logger.Error("the poller has reached the max failed cycles, closing the event stream")
			close(ep.eventChan)

			return
		}

		select {
		case <-time.After(ep.cfg.PollInterval):
			continue
		case <-ep.quit:
			return
		}
	}
}
