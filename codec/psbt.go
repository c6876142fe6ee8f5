package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/psbt"
)

var (
	ErrEmptyPsbt     = errors.New("psbt bytes are empty")
	ErrPsbtNoInputs  = errors.New("psbt unsigned transaction has no inputs")
	ErrPsbtNoOutputs = errors.New("psbt unsigned transaction has no outputs")
)

// DecodePsbt parses the raw (non base64) serialization of a partially signed
// bitcoin transaction and checks that it describes a spendable transaction.
func DecodePsbt(raw []byte) (*psbt.Packet, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPsbt
	}

	packet, err := psbt.NewFromRawBytes(bytes.NewReader(raw), false)
	if err != nil {
		return nil, fmt.Errorf("failed to parse psbt: %w", err)
	}

	if err := ValidatePsbt(packet); err != nil {
		return nil, err
	}

	return packet, nil
}

// ValidatePsbt checks the structural invariants of an already parsed packet.
func ValidatePsbt(packet *psbt.Packet) error {
	if packet == nil || packet.UnsignedTx == nil {
		return fmt.Errorf("psbt has no unsigned transaction")
	}
	if len(packet.UnsignedTx.TxIn) == 0 {
		return ErrPsbtNoInputs
	}
	if len(packet.UnsignedTx.TxOut) == 0 {
		return ErrPsbtNoOutputs
	}
	if err := packet.SanityCheck(); err != nil {
		return fmt.Errorf("psbt failed sanity check: %w", err)
	}

	return nil
}

// EncodePsbt returns the raw serialization of the packet.
func EncodePsbt(packet *psbt.Packet) ([]byte, error) {
	var buf bytes.Buffer
	if err := packet.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize psbt: %w", err)
	}

	return buf.Bytes(), nil
}

// TxID returns the id of the transaction the packet spends into.
func TxID(packet *psbt.Packet) string {
	return packet.UnsignedTx.TxHash().String()
}
