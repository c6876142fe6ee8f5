package testutil

import (
	"math/rand"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bifrost-platform/btc-relayer/testutil/mocks"
	"github.com/bifrost-platform/btc-relayer/types"
)

// PrepareMockedChainClient returns a chain client mock answering the
// metadata queries of the given chain.
func PrepareMockedChainClient(t *testing.T, r *rand.Rand, chainID types.ChainID, isNative bool) *mocks.MockChainClient {
	ctl := gomock.NewController(t)
	mockChainClient := mocks.NewMockChainClient(ctl)

	mockChainClient.EXPECT().ChainID().Return(chainID).AnyTimes()
	mockChainClient.EXPECT().ChainName().Return("chain-" + chainID.String()).AnyTimes()
	mockChainClient.EXPECT().Address().Return(GenRandomAddress(r)).AnyTimes()
	mockChainClient.EXPECT().IsNative().Return(isNative).AnyTimes()
	mockChainClient.EXPECT().Close().Return(nil).AnyTimes()

	return mockChainClient
}
