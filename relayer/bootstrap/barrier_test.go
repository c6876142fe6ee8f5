package bootstrap_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bifrost-platform/btc-relayer/relayer/bootstrap"
	"github.com/bifrost-platform/btc-relayer/testutil"
	"github.com/bifrost-platform/btc-relayer/types"
)

func genChainIDs(n int) []types.ChainID {
	ids := make([]types.ChainID, n)
	for i := range ids {
		ids[i] = types.ChainID(1000 + i)
	}

	return ids
}

// FuzzBarrier_ReportDone tests that the barrier flips only on the last
// distinct completion report
func FuzzBarrier_ReportDone(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		t.Parallel()
		r := rand.New(rand.NewSource(seed))

		n := r.Intn(10) + 1
		chains := genChainIDs(n)
		b, err := bootstrap.NewBarrier(chains, types.BootstrapInProgress)
		require.NoError(t, err)
		require.Equal(t, n, b.NumChains())

		r.Shuffle(len(chains), func(i, j int) { chains[i], chains[j] = chains[j], chains[i] })

		for i, id := range chains {
			require.True(t, b.IsSyncedAs(types.BootstrapInProgress))
			require.False(t, b.IsStreaming(id))

			flipped, err := b.ReportDone(id)
			require.NoError(t, err)
			require.Equal(t, i == n-1, flipped)
			require.Equal(t, i+1, b.Completed())

			if i < n-1 {
				// a duplicate report of the same chain does not count
				flipped, err = b.ReportDone(id)
				require.NoError(t, err)
				require.False(t, flipped)
				require.Equal(t, i+1, b.Completed())
			}
		}

		require.True(t, b.IsSyncedAs(types.NormalStart))
		for _, id := range chains {
			require.True(t, b.IsStreaming(id))
		}
		select {
		case <-b.Done():
		default:
			t.Fatal("done channel must be closed after the flip")
		}
	})
}

func TestBarrier_ConcurrentReports(t *testing.T) {
	t.Parallel()

	const n = 32
	chains := genChainIDs(n)
	b, err := bootstrap.NewBarrier(chains, types.BootstrapInProgress)
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		flips    int
		partials int
	)
	for _, id := range chains {
		wg.Add(1)
		go func(id types.ChainID) {
			defer wg.Done()

			flipped, err := b.ReportDone(id)
			if err != nil {
				t.Error(err)
			}

			// a reader never observes a partially flipped collection
			if !b.IsSyncedAs(types.NormalStart) && !b.IsSyncedAs(types.BootstrapInProgress) {
				mu.Lock()
				partials++
				mu.Unlock()
			}

			if flipped {
				mu.Lock()
				flips++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	require.Equal(t, 1, flips)
	require.Zero(t, partials)
	require.Equal(t, n, b.Completed())
	require.True(t, b.IsSyncedAs(types.NormalStart))
}

func TestBarrier_ReportsBeyondCount(t *testing.T) {
	t.Parallel()

	chains := genChainIDs(2)
	b, err := bootstrap.NewBarrier(chains, types.BootstrapInProgress)
	require.NoError(t, err)

	_, err = b.ReportDone(chains[0])
	require.NoError(t, err)
	flipped, err := b.ReportDone(chains[1])
	require.NoError(t, err)
	require.True(t, flipped)

	for _, id := range chains {
		flipped, err = b.ReportDone(id)
		require.NoError(t, err)
		require.False(t, flipped)
	}
	require.Equal(t, 2, b.Completed())
	require.True(t, b.IsSyncedAs(types.NormalStart))

	_, err = b.ReportDone(types.ChainID(1))
	require.Error(t, err)
}

func TestBarrier_Transition(t *testing.T) {
	t.Parallel()

	chains := genChainIDs(3)
	b, err := bootstrap.NewBarrier(chains, types.NodeSyncing)
	require.NoError(t, err)

	moved, err := b.Transition(types.BootstrapInProgress, types.NodeSyncing)
	require.NoError(t, err)
	require.False(t, moved)

	moved, err = b.Transition(types.NodeSyncing, types.BootstrapInProgress)
	require.NoError(t, err)
	require.True(t, moved)
	require.True(t, b.IsSyncedAs(types.BootstrapInProgress))

	_, err = b.Transition(types.BootstrapInProgress, types.NormalStart)
	require.Error(t, err)

	state, err := b.State(chains[0])
	require.NoError(t, err)
	require.Equal(t, types.BootstrapInProgress, state)
}

func TestNewBarrier(t *testing.T) {
	t.Parallel()

	_, err := bootstrap.NewBarrier(nil, types.BootstrapInProgress)
	require.Error(t, err)

	_, err = bootstrap.NewBarrier([]types.ChainID{1, 1}, types.BootstrapInProgress)
	require.Error(t, err)

	b, err := bootstrap.NewBarrier([]types.ChainID{1, 2}, types.NormalStart)
	require.NoError(t, err)
	require.True(t, b.IsStreaming(1))
	require.Equal(t, 2, b.Completed())
	<-b.Done()
}
