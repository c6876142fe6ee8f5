package service

import (
	"context"

	"github.com/bifrost-platform/btc-relayer/types"
)

func (h *OutboundHandler) ProcessConfirmedEvent(ctx context.Context, blockNumber uint64, ev types.ExternalEvent, isBootstrap bool) error {
	return h.processConfirmedEvent(ctx, blockNumber, ev, isBootstrap)
}

func (h *OutboundHandler) ProcessNextEventMessage(ctx context.Context) error {
	return h.processNextEventMessage(ctx)
}

func (h *OutboundHandler) Bootstrap(ctx context.Context) error {
	return h.bootstrap(ctx)
}

func AllSelected(ctx context.Context, gates ...Gate) (bool, error) {
	return allSelected(ctx, gates...)
}

func (app *RelayerApp) EventPoller(chainID types.ChainID) *EventPoller {
	return app.pollers[chainID]
}
