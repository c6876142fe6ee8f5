package service

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/diag"
	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/relayer/bootstrap"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/relayer/store"
	"github.com/bifrost-platform/btc-relayer/types"
)

const subLogTarget = "btc-outbound-handler"

// SubmissionJournal records the psbts submitted by the relayer
type SubmissionJournal interface {
	HasSubmission(chainID types.ChainID, txid chainhash.Hash) (bool, error)
	SaveSubmission(chainID types.ChainID, txid chainhash.Hash, blockNumber uint64, txHash string) (*store.StoredSubmission, error)
}

// OutboundHandler relays the UnsignedPsbtSubmitted events of one chain. It
// replays a historical window once, waits until the handlers of every other
// managed chain did the same, and then consumes the live event stream.
type OutboundHandler struct {
	cc            api.ChainClient
	systemClients map[types.ChainID]api.ChainClient
	barrier       *bootstrap.Barrier
	eventChan     <-chan *types.EventMessage

	bootstrapCfg *config.BootstrapConfig
	callInterval time.Duration

	relayerGate Gate
	socketGate  Gate

	journal  SubmissionJournal
	reporter diag.Reporter
	metrics  *metrics.RelayerMetrics
	logger   *zap.Logger

	// only touched by the goroutine running Run
	bootstrapped bool
	// first block of the live stream, 0 until the replay of a configured
	// window completed
	streamFrom *atomic.Uint64
}

// NewOutboundHandler returns the handler of the chain behind cc. The
// systemClients are every managed chain, used to find the native chain when
// cc is not native.
func NewOutboundHandler(
	cfg *config.Config,
	cc api.ChainClient,
	systemClients map[types.ChainID]api.ChainClient,
	barrier *bootstrap.Barrier,
	eventChan <-chan *types.EventMessage,
	relayerGate Gate,
	socketGate Gate,
	journal SubmissionJournal,
	reporter diag.Reporter,
	metrics *metrics.RelayerMetrics,
	logger *zap.Logger,
) *OutboundHandler {
	if socketGate == nil {
		socketGate = AlwaysSelected
	}

	return &OutboundHandler{
		cc:            cc,
		systemClients: systemClients,
		barrier:       barrier,
		eventChan:     eventChan,
		bootstrapCfg:  cfg.BootstrapWindow(),
		callInterval:  cfg.CallInterval,
		relayerGate:   relayerGate,
		socketGate:    socketGate,
		journal:       journal,
		reporter:      reporter,
		metrics:       metrics,
		streamFrom:    atomic.NewUint64(0),
		logger: logger.With(
			zap.String("chain", cc.ChainName()),
			zap.String("target", subLogTarget),
		),
	}
}

func (h *OutboundHandler) ChainID() types.ChainID {
	return h.cc.ChainID()
}

// StreamStartHeight returns the block following the replayed window. It is
// only known once the handler replayed a configured window.
func (h *OutboundHandler) StreamStartHeight() (uint64, bool) {
	height := h.streamFrom.Load()

	return height, height != 0
}

// Run drives the handler until ctx is cancelled or a critical error occurs.
// The phase is read from the barrier on every iteration since other
// handlers may complete the bootstrap at any time.
func (h *OutboundHandler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		state, err := h.barrier.State(h.cc.ChainID())
		if err != nil {
			return err
		}

		switch state {
		case types.NormalStart:
			err = h.processNextEventMessage(ctx)
		case types.BootstrapInProgress:
			if !h.bootstrapped {
				if err = h.bootstrap(ctx); err == nil {
					h.bootstrapped = true
				}
			}
			if err == nil {
				h.pause(ctx, h.barrier.Done())
			}
		default:
			h.pause(ctx, nil)
		}

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}
	}
}

// pause waits for the call interval, the wake channel or the end of ctx,
// whichever comes first. A nil wake channel never fires.
func (h *OutboundHandler) pause(ctx context.Context, wake <-chan struct{}) {
	timer := time.NewTimer(h.callInterval)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-wake:
	case <-ctx.Done():
	}
}

// processNextEventMessage blocks until the next imported block is delivered
// and processes its events in order.
func (h *OutboundHandler) processNextEventMessage(ctx context.Context) error {
	var (
		msg *types.EventMessage
		ok  bool
	)
	select {
	case <-ctx.Done():
		return nil
	case msg, ok = <-h.eventChan:
		if !ok {
			return ErrEventStreamClosed
		}
	}

	h.logger.Info("imported block with target events",
		zap.Uint64("block", msg.BlockNumber),
		zap.Int("events", len(msg.Events)),
	)

	for _, ev := range msg.Events {
		if err := h.processConfirmedEvent(ctx, msg.BlockNumber, ev, false); err != nil {
			return fmt.Errorf("failed to process the events of block %d: %w", msg.BlockNumber, err)
		}
	}

	h.metrics.RecordLastProcessedBlock(h.cc.ChainID(), msg.BlockNumber)

	return nil
}
