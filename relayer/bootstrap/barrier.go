package bootstrap

import (
	"fmt"
	"sync"

	"github.com/bifrost-platform/btc-relayer/types"
)

// Barrier coordinates the bootstrap phase of every handler in the process.
// It holds one BootstrapState per managed chain and counts completed
// replays; the completion that makes the count reach the number of chains
// flips every state to NormalStart at once.
type Barrier struct {
	chains map[types.ChainID]int

	// states is read by every handler on each loop iteration and written
	// only by transitions
	statesMu sync.RWMutex
	states   []types.BootstrapState

	// countMu spans the whole increment-compare-flip sequence
	countMu  sync.Mutex
	count    int
	reported map[types.ChainID]struct{}

	done chan struct{}
}

// NewBarrier creates a barrier tracking the given chains, all starting in
// the given state. The set of chains is fixed for the lifetime of the
// barrier.
func NewBarrier(chains []types.ChainID, initial types.BootstrapState) (*Barrier, error) {
	if len(chains) == 0 {
		return nil, fmt.Errorf("at least one chain is required")
	}

	index := make(map[types.ChainID]int, len(chains))
	states := make([]types.BootstrapState, len(chains))
	for i, id := range chains {
		if _, exists := index[id]; exists {
			return nil, fmt.Errorf("duplicate chain %d", id)
		}
		index[id] = i
		states[i] = initial
	}

	b := &Barrier{
		chains:   index,
		states:   states,
		reported: make(map[types.ChainID]struct{}, len(chains)),
		done:     make(chan struct{}),
	}

	if initial == types.NormalStart {
		b.count = len(chains)
		close(b.done)
	}

	return b, nil
}

// NumChains returns the number of chains under management
func (b *Barrier) NumChains() int {
	return len(b.states)
}

// State returns the current state of the given chain
func (b *Barrier) State(chain types.ChainID) (types.BootstrapState, error) {
	i, ok := b.chains[chain]
	if !ok {
		return 0, fmt.Errorf("chain %d is not managed by the barrier", chain)
	}

	b.statesMu.RLock()
	defer b.statesMu.RUnlock()

	return b.states[i], nil
}

// IsSyncedAs reports whether every tracked chain is in the given state
func (b *Barrier) IsSyncedAs(state types.BootstrapState) bool {
	b.statesMu.RLock()
	defer b.statesMu.RUnlock()

	for _, s := range b.states {
		if s != state {
			return false
		}
	}

	return true
}

// IsStreaming reports whether the given chain may consume its live stream
func (b *Barrier) IsStreaming(chain types.ChainID) bool {
	state, err := b.State(chain)

	return err == nil && state == types.NormalStart
}

// Transition moves every chain from one state to another. It returns false
// without changing anything if any chain is not in the from state. It cannot
// be used to enter or leave NormalStart, which only ReportDone reaches.
func (b *Barrier) Transition(from, to types.BootstrapState) (bool, error) {
	if from == types.NormalStart || to == types.NormalStart {
		return false, fmt.Errorf("transition %s -> %s is reserved to bootstrap completion", from, to)
	}

	b.statesMu.Lock()
	defer b.statesMu.Unlock()

	for _, s := range b.states {
		if s != from {
			return false, nil
		}
	}
	for i := range b.states {
		b.states[i] = to
	}

	return true, nil
}

// ReportDone records that the handler of the given chain finished its
// bootstrap replay. It returns true if this report completed the count and
// flipped every chain to NormalStart. Reports beyond the first one per chain
// are ignored.
func (b *Barrier) ReportDone(chain types.ChainID) (bool, error) {
	if _, ok := b.chains[chain]; !ok {
		return false, fmt.Errorf("chain %d is not managed by the barrier", chain)
	}

	b.countMu.Lock()
	defer b.countMu.Unlock()

	if _, ok := b.reported[chain]; ok || b.count >= len(b.states) {
		return false, nil
	}
	b.reported[chain] = struct{}{}
	b.count++

	if b.count < len(b.states) {
		return false, nil
	}

	b.statesMu.Lock()
	for i := range b.states {
		b.states[i] = types.NormalStart
	}
	b.statesMu.Unlock()

	close(b.done)

	return true, nil
}

// Completed returns the number of chains that reported completion
func (b *Barrier) Completed() int {
	b.countMu.Lock()
	defer b.countMu.Unlock()

	return b.count
}

// Done is closed once every chain reached NormalStart
func (b *Barrier) Done() <-chan struct{} {
	return b.done
}
