package testutil

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/bifrost-platform/btc-relayer/types"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	newHeaderBytes := make([]byte, length)
	r.Read(newHeaderBytes)

	return newHeaderBytes
}

func GenRandomHexStr(r *rand.Rand, length uint64) string {
	randBytes := GenRandomByteArray(r, length)

	return hex.EncodeToString(randBytes)
}

func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}

func GenRandomAddress(r *rand.Rand) common.Address {
	return common.BytesToAddress(GenRandomByteArray(r, common.AddressLength))
}

// GenRandomPsbt generates a psbt spending 1 to 3 random outpoints into 1 to
// 3 P2WPKH outputs, and returns it with its raw serialization.
func GenRandomPsbt(t *testing.T, r *rand.Rand) (*psbt.Packet, []byte) {
	tx := wire.NewMsgTx(wire.TxVersion)

	numIn := r.Intn(3) + 1
	for i := 0; i < numIn; i++ {
		var prevHash chainhash.Hash
		copy(prevHash[:], GenRandomByteArray(r, chainhash.HashSize))
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, r.Uint32()), nil, nil))
	}

	numOut := r.Intn(3) + 1
	for i := 0; i < numOut; i++ {
		pkScript := append([]byte{0x00, 0x14}, GenRandomByteArray(r, 20)...)
		tx.AddTxOut(wire.NewTxOut(r.Int63n(1e8)+546, pkScript))
	}

	packet, err := psbt.NewFromUnsignedTx(tx)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, packet.Serialize(&buf))

	return packet, buf.Bytes()
}

// GenMalformedPsbt returns bytes that cannot be parsed as a psbt
func GenMalformedPsbt(r *rand.Rand) []byte {
	// anything not starting with the psbt magic is rejected
	return append([]byte("nopsbt"), GenRandomByteArray(r, 16)...)
}

func GenRoundMetaData(r *rand.Rand) *types.RoundMetaData {
	roundLength := uint64(r.Int63n(1000) + 100)
	currentRound := uint64(r.Int63n(1000) + 1)

	return &types.RoundMetaData{
		CurrentRoundIndex:   currentRound,
		FirstSessionIndex:   currentRound,
		CurrentSessionIndex: currentRound,
		FirstRoundBlock:     currentRound * roundLength,
		FirstSessionBlock:   currentRound * roundLength,
		CurrentBlock:        currentRound*roundLength + uint64(r.Int63n(int64(roundLength))),
		RoundLength:         roundLength,
		SessionLength:       roundLength,
	}
}
