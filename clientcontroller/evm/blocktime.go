package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/bifrost-platform/btc-relayer/types"
)

const (
	// BootstrapBlockChunkSize is the number of recent blocks sampled to
	// estimate the average block time
	BootstrapBlockChunkSize = uint64(2000)

	// NativeBlockTimeMs is the block time of the native chain, which rounds
	// are measured in
	NativeBlockTimeMs = uint64(3000)
)

// OffsetHeightFromBlockTime converts roundOffset rounds of the native chain
// into a number of blocks of a chain producing a block every avgBlockTimeMs,
// rounded up. A zero block time falls back to the native block count.
func OffsetHeightFromBlockTime(roundOffset uint32, roundLength, avgBlockTimeMs uint64) uint64 {
	nativeBlocks := roundLength * uint64(roundOffset)
	if avgBlockTimeMs == 0 {
		return nativeBlocks
	}

	window := nativeBlocks * NativeBlockTimeMs

	return (window + avgBlockTimeMs - 1) / avgBlockTimeMs
}

// BootstrapOffsetHeight implements api.BlockQuerier
func (c *Client) BootstrapOffsetHeight(ctx context.Context, roundOffset uint32, roundInfo *types.RoundMetaData) (uint64, error) {
	if roundInfo == nil {
		return 0, fmt.Errorf("round info cannot be nil")
	}

	latest, err := c.LatestBlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	avgBlockTimeMs, err := c.averageBlockTimeMs(ctx, latest)
	if err != nil {
		return 0, err
	}

	return OffsetHeightFromBlockTime(roundOffset, roundInfo.RoundLength, avgBlockTimeMs), nil
}

// averageBlockTimeMs samples the timestamps of the latest block and of the
// block BootstrapBlockChunkSize blocks before it
func (c *Client) averageBlockTimeMs(ctx context.Context, latest uint64) (uint64, error) {
	sample := BootstrapBlockChunkSize
	if latest < sample {
		sample = latest
	}
	if sample == 0 {
		return 0, nil
	}

	current, err := c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(latest))
	if err != nil {
		return 0, fmt.Errorf("failed to query header %d: %w", latest, err)
	}
	prev, err := c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(latest-sample))
	if err != nil {
		return 0, fmt.Errorf("failed to query header %d: %w", latest-sample, err)
	}
	if current.Time <= prev.Time {
		return 0, nil
	}

	return (current.Time - prev.Time) * 1000 / sample, nil
}
