package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/types"
)

// bootstrap replays the configured historical window and reports the
// completion of this chain to the barrier. A handler without bootstrap
// configuration reports immediately.
func (h *OutboundHandler) bootstrap(ctx context.Context) error {
	h.logger.Info("[Bootstrap mode] bootstrapping psbt events")

	msgs, toBlock, err := h.getBootstrapEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bootstrap events: %w", err)
	}

	for _, msg := range msgs {
		for _, ev := range msg.Events {
			if err := h.processConfirmedEvent(ctx, msg.BlockNumber, ev, true); err != nil {
				return fmt.Errorf("failed to process the bootstrap events of block %d: %w", msg.BlockNumber, err)
			}
		}
	}

	// set before reporting so that it is visible once the barrier flips
	if h.bootstrapCfg != nil {
		h.streamFrom.Store(toBlock + 1)
	}

	flipped, err := h.barrier.ReportDone(h.cc.ChainID())
	if err != nil {
		return fmt.Errorf("failed to report bootstrap completion: %w", err)
	}
	h.metrics.RecordBootstrapCompletion(h.cc.ChainID())

	// whoever completes the count performs the flip
	if flipped {
		h.metrics.RecordStreaming()
		h.logger.Info("[Bootstrap mode] bootstrap process successfully ended",
			zap.Int("chains", h.barrier.NumChains()))
	}

	return nil
}

// getBootstrapEvents returns the target events of the last rounds, as
// configured by the bootstrap round offset, and the last block of the window.
func (h *OutboundHandler) getBootstrapEvents(ctx context.Context) ([]*types.EventMessage, uint64, error) {
	if h.bootstrapCfg == nil {
		return nil, 0, nil
	}

	authority, err := h.nativeAuthority()
	if err != nil {
		return nil, 0, err
	}

	roundInfo, err := authority.RoundInfo(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query the round info: %w", err)
	}

	offset, err := h.cc.BootstrapOffsetHeight(ctx, h.bootstrapCfg.GetRoundOffset(), roundInfo)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to compute the bootstrap offset height: %w", err)
	}

	latest, err := h.cc.LatestBlockNumber(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query the latest block number: %w", err)
	}

	fromBlock, toBlock := BootstrapBlockRange(latest, offset)

	h.logger.Debug("[Bootstrap mode] querying historical events",
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", toBlock),
	)

	msgs, err := h.cc.FilterBlockEvents(ctx, fromBlock, toBlock)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to filter events in [%d, %d]: %w", fromBlock, toBlock, err)
	}

	return msgs, toBlock, nil
}

// nativeAuthority returns the round registry of the native chain: the
// handler's own chain if native, else the managed chain flagged native.
func (h *OutboundHandler) nativeAuthority() (api.Authority, error) {
	if h.cc.IsNative() {
		return h.cc, nil
	}

	ids := make([]types.ChainID, 0, len(h.systemClients))
	for id := range h.systemClients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if client := h.systemClients[id]; client.IsNative() {
			return client, nil
		}
	}

	return nil, fmt.Errorf("[%s]-[%s] %w", h.cc.ChainName(), subLogTarget, ErrNoNativeChain)
}

// BootstrapBlockRange returns the block range ending at latest and spanning
// offset blocks back, clamped at the genesis block.
func BootstrapBlockRange(latest, offset uint64) (fromBlock, toBlock uint64) {
	if offset >= latest {
		return 0, latest
	}

	return latest - offset, latest
}
