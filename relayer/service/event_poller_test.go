package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/relayer/service"
	"github.com/bifrost-platform/btc-relayer/testutil"
	"github.com/bifrost-platform/btc-relayer/types"
)

// FuzzEventPoller_Start tests the poller pushing the blocks with target
// events in sequence
func FuzzEventPoller_Start(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))

		startHeight := uint64(r.Int63n(100) + 1)
		endHeight := startHeight + uint64(r.Int63n(10)+1)
		pollerCfg := config.DefaultChainPollerConfig()
		pollerCfg.PollInterval = 10 * time.Millisecond
		pollerCfg.PollSize = 2

		cc := testutil.PrepareMockedChainClient(t, r, 1000, true)
		cc.EXPECT().LatestBlockNumber(gomock.Any()).Return(endHeight, nil).AnyTimes()
		cc.EXPECT().FilterBlockEvents(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to uint64) ([]*types.EventMessage, error) {
				var msgs []*types.EventMessage
				for h := from; h <= to; h++ {
					msgs = append(msgs, types.NewEventMessage(h, &types.UnknownEvent{}))
				}
				return msgs, nil
			}).AnyTimes()

		poller := service.NewEventPoller(testutil.GetTestLogger(t), &pollerCfg, cc, metrics.NewRelayerMetrics(prometheus.NewRegistry()))
		require.NoError(t, poller.Start(startHeight))
		defer func() {
			require.NoError(t, poller.Stop())
		}()

		for h := startHeight; h <= endHeight; h++ {
			select {
			case msg := <-poller.GetEventChan():
				require.Equal(t, h, msg.BlockNumber)
			case <-time.After(10 * time.Second):
				t.Fatalf("timed out waiting for block %d", h)
			}
		}

		require.Eventually(t, func() bool {
			return poller.NextHeight() == endHeight+1
		}, 5*time.Second, 10*time.Millisecond)
	})
}

func TestEventPoller_ClosesStreamAfterMaxFailedCycles(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	pollerCfg := config.DefaultChainPollerConfig()
	pollerCfg.PollInterval = time.Millisecond
	pollerCfg.MaxFailedCycles = 1

	defaultRtyAtt := service.RtyAtt
	service.RtyAtt = retry.Attempts(1)
	defer func() {
		service.RtyAtt = defaultRtyAtt
	}()

	cc := testutil.PrepareMockedChainClient(t, r, 1000, true)
	cc.EXPECT().LatestBlockNumber(gomock.Any()).Return(uint64(0), errors.New("connection refused")).AnyTimes()

	poller := service.NewEventPoller(testutil.GetTestLogger(t), &pollerCfg, cc, metrics.NewRelayerMetrics(prometheus.NewRegistry()))
	require.NoError(t, poller.Start(1))
	defer func() {
		require.NoError(t, poller.Stop())
	}()

	select {
	case _, ok := <-poller.GetEventChan():
		require.False(t, ok)
	case <-time.After(30 * time.Second):
		t.Fatal("the event stream was not closed")
	}
}

func TestEventPoller_StartStop(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	pollerCfg := config.DefaultChainPollerConfig()
	cc := testutil.PrepareMockedChainClient(t, r, 1000, true)
	cc.EXPECT().LatestBlockNumber(gomock.Any()).Return(uint64(0), nil).AnyTimes()

	poller := service.NewEventPoller(testutil.GetTestLogger(t), &pollerCfg, cc, metrics.NewRelayerMetrics(prometheus.NewRegistry()))
	require.NoError(t, poller.Start(1))
	require.Error(t, poller.Start(1))
	require.True(t, poller.IsRunning())

	require.NoError(t, poller.Stop())
	require.ErrorIs(t, poller.Stop(), service.ErrPollerStopped)
}
