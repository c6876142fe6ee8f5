package codec_test

import (
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/bifrost-platform/btc-relayer/codec"
	"github.com/bifrost-platform/btc-relayer/testutil"
)

func FuzzDecodePsbt(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))

		packet, raw := testutil.GenRandomPsbt(t, r)

		decoded, err := codec.DecodePsbt(raw)
		require.NoError(t, err)
		require.Equal(t, codec.TxID(packet), codec.TxID(decoded))

		encoded, err := codec.EncodePsbt(decoded)
		require.NoError(t, err)
		require.Equal(t, raw, encoded)
	})
}

func TestDecodePsbt_Invalid(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	_, err := codec.DecodePsbt(nil)
	require.ErrorIs(t, err, codec.ErrEmptyPsbt)

	_, err = codec.DecodePsbt(testutil.GenMalformedPsbt(r))
	require.Error(t, err)

	// a valid psbt prefix with a truncated body
	_, raw := testutil.GenRandomPsbt(t, r)
	_, err = codec.DecodePsbt(raw[:len(raw)/2])
	require.Error(t, err)
}

func TestValidatePsbt(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	require.Error(t, codec.ValidatePsbt(nil))

	packet, _ := testutil.GenRandomPsbt(t, r)
	require.NoError(t, codec.ValidatePsbt(packet))

	noOutputs := &psbt.Packet{
		UnsignedTx: packet.UnsignedTx.Copy(),
		Inputs:     packet.Inputs,
	}
	noOutputs.UnsignedTx.TxOut = nil
	require.ErrorIs(t, codec.ValidatePsbt(noOutputs), codec.ErrPsbtNoOutputs)

	noInputs := &psbt.Packet{
		UnsignedTx: wire.NewMsgTx(wire.TxVersion),
		Outputs:    packet.Outputs,
	}
	require.ErrorIs(t, codec.ValidatePsbt(noInputs), codec.ErrPsbtNoInputs)
}
