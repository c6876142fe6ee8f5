package api

import (
	"context"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bifrost-platform/btc-relayer/types"
)

// ChainClient defines the interface for interacting with one managed chain
// on behalf of the relayer
type ChainClient interface {
	ChainMetadata
	Authority
	RelayerManager
	BlockQuerier
	EventFilterer
	PsbtSubmitter

	// Close cleanly shuts down the client
	Close() error
}

// ChainMetadata describes the identity of a chain and of the relayer on it
type ChainMetadata interface {
	// ChainID returns the id of the chain
	ChainID() types.ChainID

	// ChainName returns the human readable name used in logs
	ChainName() string

	// Address returns the relayer's own account on the chain
	Address() common.Address

	// IsNative reports whether the chain hosts the authoritative round registry
	IsNative() bool
}

// Authority exposes the round timing registry
type Authority interface {
	// RoundInfo returns a fresh snapshot of the round timing parameters
	RoundInfo(ctx context.Context) (*types.RoundMetaData, error)
}

// RelayerManager exposes the relayer rotation registry
type RelayerManager interface {
	// LatestRound returns the index of the latest closed round
	LatestRound(ctx context.Context) (uint64, error)

	// IsPreviousSelectedRelayer queries whether the relayer was selected for
	// the given round
	IsPreviousSelectedRelayer(ctx context.Context, round uint64, relayer common.Address, isInitial bool) (bool, error)
}

type BlockQuerier interface {
	// LatestBlockNumber returns the height of the chain tip
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// BootstrapOffsetHeight converts a number of rounds into a number of
	// blocks of this chain, based on its observed block time
	BootstrapOffsetHeight(ctx context.Context, roundOffset uint32, roundInfo *types.RoundMetaData) (uint64, error)

	// IsSyncing reports whether the node behind the client is still syncing
	IsSyncing(ctx context.Context) (bool, error)
}

type EventFilterer interface {
	// FilterBlockEvents returns the target events emitted in
	// [fromBlock, toBlock], grouped per block in ascending block order.
	// Blocks without target events are omitted.
	FilterBlockEvents(ctx context.Context, fromBlock, toBlock uint64) ([]*types.EventMessage, error)
}

type PsbtSubmitter interface {
	// SubmitSignedPsbt submits the signed psbt to the socket queue contract
	// from the given relayer account
	SubmitSignedPsbt(ctx context.Context, from common.Address, packet *psbt.Packet) (*types.TxResponse, error)
}
