package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
)

// Gate decides whether the local relayer may submit in the current round.
type Gate interface {
	IsSelected(ctx context.Context) (bool, error)
}

// GateFunc adapts a function to the Gate interface
type GateFunc func(ctx context.Context) (bool, error)

func (f GateFunc) IsSelected(ctx context.Context) (bool, error) {
	return f(ctx)
}

// AlwaysSelected authorizes every submission. It is the default destination
// side policy.
var AlwaysSelected Gate = GateFunc(func(context.Context) (bool, error) {
	return true, nil
})

var _ Gate = (*RelayerGate)(nil)

// RelayerGate authorizes the relayer if it was selected for the latest
// closed round of the relayer registry. Nothing is cached, every call reads
// through to the registry.
type RelayerGate struct {
	rm      api.RelayerManager
	relayer common.Address
}

func NewRelayerGate(rm api.RelayerManager, relayer common.Address) *RelayerGate {
	return &RelayerGate{
		rm:      rm,
		relayer: relayer,
	}
}

func (g *RelayerGate) IsSelected(ctx context.Context) (bool, error) {
	round, err := g.rm.LatestRound(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query the latest round: %w", err)
	}

	selected, err := g.rm.IsPreviousSelectedRelayer(ctx, round, g.relayer, false)
	if err != nil {
		return false, fmt.Errorf("failed to query whether %s was selected at round %d: %w", g.relayer.Hex(), round, err)
	}

	return selected, nil
}

// allSelected evaluates the gates in order and stops at the first one that
// does not authorize.
func allSelected(ctx context.Context, gates ...Gate) (bool, error) {
	for _, g := range gates {
		selected, err := g.IsSelected(ctx)
		if err != nil {
			return false, err
		}
		if !selected {
			return false, nil
		}
	}

	return true, nil
}
