package service_test

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/relayer/service"
	"github.com/bifrost-platform/btc-relayer/testutil"
	"github.com/bifrost-platform/btc-relayer/testutil/mocks"
	"github.com/bifrost-platform/btc-relayer/types"
)

func newTestApp(t *testing.T, clients ...api.ChainClient) *service.RelayerApp {
	return newTestAppWithBootstrap(t, config.BootstrapConfig{Enabled: false}, clients...)
}

func newTestAppWithBootstrap(t *testing.T, bootstrapCfg config.BootstrapConfig, clients ...api.ChainClient) *service.RelayerApp {
	cfg := config.DefaultConfigWithHome(t.TempDir())
	cfg.CallInterval = 10 * time.Millisecond
	cfg.BootstrapConfig = &bootstrapCfg
	cfg.PollerConfig.PollInterval = 10 * time.Millisecond

	dbBackend, err := cfg.DatabaseConfig.GetDBBackend()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, dbBackend.Close())
	})

	app, err := service.NewRelayerApp(
		&cfg,
		clients,
		dbBackend,
		&testutil.RecordingReporter{},
		metrics.NewRelayerMetrics(prometheus.NewRegistry()),
		testutil.GetTestLogger(t),
	)
	require.NoError(t, err)

	return app
}

// expectLiveChain mocks a synced chain at the given tip whose next block
// holds the given events
func expectLiveChain(cc *mocks.MockChainClient, tip uint64, events ...types.ExternalEvent) {
	cc.EXPECT().IsSyncing(gomock.Any()).Return(false, nil).AnyTimes()
	cc.EXPECT().LatestBlockNumber(gomock.Any()).Return(tip, nil).Times(1)
	cc.EXPECT().LatestBlockNumber(gomock.Any()).Return(tip+1, nil).AnyTimes()

	var delivered atomic.Bool
	cc.EXPECT().FilterBlockEvents(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to uint64) ([]*types.EventMessage, error) {
			if len(events) == 0 || from > tip+1 || to < tip+1 || delivered.Swap(true) {
				return nil, nil
			}
			return []*types.EventMessage{types.NewEventMessage(tip+1, events...)}, nil
		}).AnyTimes()
}

func TestRelayerApp_RelaysLiveEvents(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	native := testutil.PrepareMockedChainClient(t, r, 1, true)
	external := testutil.PrepareMockedChainClient(t, r, 2, false)

	nativePacket, nativeRaw := testutil.GenRandomPsbt(t, r)
	externalPacket, externalRaw := testutil.GenRandomPsbt(t, r)
	expectLiveChain(native, 100, &types.UnsignedPsbtSubmitted{Psbt: nativeRaw})
	expectLiveChain(external, 500, &types.UnsignedPsbtSubmitted{Psbt: externalRaw})

	// the rotation of the native chain authorizes submissions on every chain
	native.EXPECT().LatestRound(gomock.Any()).Return(uint64(7), nil).AnyTimes()
	native.EXPECT().IsPreviousSelectedRelayer(gomock.Any(), uint64(7), native.Address(), false).Return(true, nil).AnyTimes()

	nativeRec := expectSubmissions(r, native)
	externalRec := expectSubmissions(r, external)

	app := newTestApp(t, native, external)
	require.NoError(t, app.Start(context.Background()))
	defer func() {
		require.NoError(t, app.Stop())
	}()

	require.Eventually(t, func() bool {
		return len(nativeRec.get()) == 1 && len(externalRec.get()) == 1
	}, 10*time.Second, 10*time.Millisecond)
	require.Equal(t, txidOf(nativePacket), nativeRec.get()[0])
	require.Equal(t, txidOf(externalPacket), externalRec.get()[0])
	require.True(t, app.GetBarrier().IsSyncedAs(types.NormalStart))

	submissions, err := app.GetSubmissionStore().ListSubmissions()
	require.NoError(t, err)
	require.Len(t, submissions, 2)
}

// TestRelayerApp_ReplayAndStreamDoNotOverlap checks that a block is relayed
// by either the bootstrap replay or the live stream, even when the chain
// grows between the two.
func TestRelayerApp_ReplayAndStreamDoNotOverlap(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	native := testutil.PrepareMockedChainClient(t, r, 1, true)
	native.EXPECT().IsSyncing(gomock.Any()).Return(false, nil).AnyTimes()

	var tipReads atomic.Int32
	native.EXPECT().LatestBlockNumber(gomock.Any()).DoAndReturn(func(context.Context) (uint64, error) {
		if tipReads.Add(1) == 1 {
			return 100, nil
		}
		return 105, nil
	}).AnyTimes()

	roundInfo := testutil.GenRoundMetaData(r)
	native.EXPECT().RoundInfo(gomock.Any()).Return(roundInfo, nil).Times(1)
	native.EXPECT().BootstrapOffsetHeight(gomock.Any(), uint32(10), roundInfo).Return(uint64(10), nil).Times(1)

	replayedPacket, replayedRaw := testutil.GenRandomPsbt(t, r)
	streamedPacket, streamedRaw := testutil.GenRandomPsbt(t, r)
	blocks := map[uint64][]byte{95: replayedRaw, 103: streamedRaw}
	native.EXPECT().FilterBlockEvents(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to uint64) ([]*types.EventMessage, error) {
			var msgs []*types.EventMessage
			for h := from; h <= to; h++ {
				if raw, ok := blocks[h]; ok {
					msgs = append(msgs, types.NewEventMessage(h, &types.UnsignedPsbtSubmitted{Psbt: raw}))
				}
			}
			return msgs, nil
		}).AnyTimes()

	native.EXPECT().LatestRound(gomock.Any()).Return(uint64(7), nil).AnyTimes()
	native.EXPECT().IsPreviousSelectedRelayer(gomock.Any(), uint64(7), native.Address(), false).Return(true, nil).AnyTimes()
	rec := expectSubmissions(r, native)

	app := newTestAppWithBootstrap(t, config.BootstrapConfig{Enabled: true, RoundOffset: 10}, native)
	require.NoError(t, app.Start(context.Background()))
	defer func() {
		require.NoError(t, app.Stop())
	}()

	require.Eventually(t, func() bool {
		return len(rec.get()) == 2
	}, 10*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return app.EventPoller(1).NextHeight() == 106
	}, 5*time.Second, 10*time.Millisecond)

	require.Never(t, func() bool {
		return len(rec.get()) > 2
	}, 200*time.Millisecond, 10*time.Millisecond)
	require.Equal(t, []string{txidOf(replayedPacket), txidOf(streamedPacket)}, rec.get())

	submissions, err := app.GetSubmissionStore().ListSubmissions()
	require.NoError(t, err)
	require.Len(t, submissions, 2)
}

func TestRelayerApp_StopsStartedPollersOnStartFailure(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	native := testutil.PrepareMockedChainClient(t, r, 1, true)
	native.EXPECT().IsSyncing(gomock.Any()).Return(false, nil).AnyTimes()
	native.EXPECT().LatestBlockNumber(gomock.Any()).Return(uint64(10), nil).AnyTimes()
	native.EXPECT().FilterBlockEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	external := testutil.PrepareMockedChainClient(t, r, 2, false)
	external.EXPECT().IsSyncing(gomock.Any()).Return(false, nil).AnyTimes()
	tipErr := errors.New("connection refused")
	external.EXPECT().LatestBlockNumber(gomock.Any()).Return(uint64(0), tipErr).AnyTimes()

	app := newTestApp(t, native, external)
	require.NoError(t, app.Start(context.Background()))
	defer func() {
		require.NoError(t, app.Stop())
	}()

	select {
	case err := <-app.Err():
		require.ErrorIs(t, err, tipErr)
	case <-time.After(10 * time.Second):
		t.Fatal("the poller start failure was not surfaced")
	}

	require.False(t, app.EventPoller(1).IsRunning())
	require.False(t, app.EventPoller(2).IsRunning())
}

func TestRelayerApp_WaitsForNodeSync(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	native := testutil.PrepareMockedChainClient(t, r, 1, true)
	native.EXPECT().LatestBlockNumber(gomock.Any()).Return(uint64(10), nil).AnyTimes()
	native.EXPECT().FilterBlockEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var synced atomic.Bool
	native.EXPECT().IsSyncing(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
		return !synced.Load(), nil
	}).AnyTimes()

	app := newTestApp(t, native)
	require.NoError(t, app.Start(context.Background()))
	defer func() {
		require.NoError(t, app.Stop())
	}()

	time.Sleep(50 * time.Millisecond)
	require.True(t, app.GetBarrier().IsSyncedAs(types.NodeSyncing))

	synced.Store(true)
	require.Eventually(t, func() bool {
		return app.GetBarrier().IsSyncedAs(types.NormalStart)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRelayerApp_SurfacesCriticalError(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	native := testutil.PrepareMockedChainClient(t, r, 1, true)
	_, raw := testutil.GenRandomPsbt(t, r)
	expectLiveChain(native, 100, &types.UnsignedPsbtSubmitted{Psbt: raw})
	native.EXPECT().LatestRound(gomock.Any()).Return(uint64(1), nil).AnyTimes()
	native.EXPECT().IsPreviousSelectedRelayer(gomock.Any(), uint64(1), native.Address(), false).Return(true, nil).AnyTimes()

	submitErr := errors.New("insufficient funds for gas")
	native.EXPECT().SubmitSignedPsbt(gomock.Any(), native.Address(), gomock.Any()).Return(nil, submitErr).Times(1)

	app := newTestApp(t, native)
	require.NoError(t, app.Start(context.Background()))
	defer func() {
		require.NoError(t, app.Stop())
	}()

	select {
	case err := <-app.Err():
		require.ErrorIs(t, err, submitErr)
		var criticalErr *service.CriticalError
		require.ErrorAs(t, err, &criticalErr)
	case <-time.After(10 * time.Second):
		t.Fatal("the critical error was not surfaced")
	}
}

func TestNewRelayerApp_RequiresNativeChain(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	cfg := config.DefaultConfigWithHome(t.TempDir())
	dbBackend, err := cfg.DatabaseConfig.GetDBBackend()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, dbBackend.Close())
	}()

	external := testutil.PrepareMockedChainClient(t, r, 2, false)
	_, err = service.NewRelayerApp(
		&cfg,
		[]api.ChainClient{external},
		dbBackend,
		&testutil.RecordingReporter{},
		metrics.NewRelayerMetrics(prometheus.NewRegistry()),
		testutil.GetTestLogger(t),
	)
	require.ErrorIs(t, err, service.ErrNoNativeChain)
}
