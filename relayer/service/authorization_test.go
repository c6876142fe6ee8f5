package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bifrost-platform/btc-relayer/relayer/service"
	"github.com/bifrost-platform/btc-relayer/testutil"
)

func TestRelayerGate_PropagatesRegistryErrors(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	relayer := testutil.GenRandomAddress(r)

	t.Run("latest round", func(t *testing.T) {
		cc := testutil.PrepareMockedChainClient(t, r, 1, true)
		roundErr := errors.New("rpc unavailable")
		cc.EXPECT().LatestRound(gomock.Any()).Return(uint64(0), roundErr).Times(1)

		_, err := service.NewRelayerGate(cc, relayer).IsSelected(context.Background())
		require.ErrorIs(t, err, roundErr)
	})

	t.Run("selection", func(t *testing.T) {
		cc := testutil.PrepareMockedChainClient(t, r, 1, true)
		selectionErr := errors.New("execution reverted")
		cc.EXPECT().LatestRound(gomock.Any()).Return(uint64(12), nil).Times(1)
		cc.EXPECT().IsPreviousSelectedRelayer(gomock.Any(), uint64(12), relayer, false).
			Return(false, selectionErr).Times(1)

		_, err := service.NewRelayerGate(cc, relayer).IsSelected(context.Background())
		require.ErrorIs(t, err, selectionErr)
	})
}

func TestAllSelected(t *testing.T) {
	t.Parallel()

	var calls int
	counting := func(selected bool, err error) service.Gate {
		return service.GateFunc(func(context.Context) (bool, error) {
			calls++
			return selected, err
		})
	}
	gateErr := errors.New("gate failed")

	tests := []struct {
		name      string
		gates     []service.Gate
		selected  bool
		wantErr   error
		wantCalls int
	}{
		{"no gates", nil, true, nil, 0},
		{"all selected", []service.Gate{counting(true, nil), counting(true, nil)}, true, nil, 2},
		{"first rejects", []service.Gate{counting(false, nil), counting(true, nil)}, false, nil, 1},
		{"second rejects", []service.Gate{counting(true, nil), counting(false, nil)}, false, nil, 2},
		{"first fails", []service.Gate{counting(false, gateErr), counting(true, nil)}, false, gateErr, 1},
	}

	for _, tt := range tests {
		calls = 0
		selected, err := service.AllSelected(context.Background(), tt.gates...)
		require.ErrorIs(t, err, tt.wantErr, tt.name)
		require.Equal(t, tt.selected, selected, tt.name)
		require.Equal(t, tt.wantCalls, calls, tt.name)
	}

	selected, err := service.AllSelected(context.Background(), service.AlwaysSelected)
	require.NoError(t, err)
	require.True(t, selected)
}
