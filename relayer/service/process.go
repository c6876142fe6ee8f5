package service

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/codec"
	"github.com/bifrost-platform/btc-relayer/diag"
	"github.com/bifrost-platform/btc-relayer/types"
)

// processConfirmedEvent relays one ledger event. Events other than
// UnsignedPsbtSubmitted are ignored, psbts that cannot be decoded are
// reported and dropped. Only query and submission failures are returned.
func (h *OutboundHandler) processConfirmedEvent(
	ctx context.Context,
	blockNumber uint64,
	ev types.ExternalEvent,
	isBootstrap bool,
) error {
	submitted, ok := ev.(*types.UnsignedPsbtSubmitted)
	if !ok {
		return nil
	}

	packet, err := codec.DecodePsbt(submitted.Psbt)
	if err != nil {
		h.reportDecodeFailure(blockNumber, submitted.Psbt, err)

		return nil
	}

	h.metrics.RecordProcessedEvent(h.cc.ChainID(), isBootstrap)
	txid := packet.UnsignedTx.TxHash()

	if !isBootstrap {
		h.logger.Info("psbt event detected",
			zap.Uint64("block", blockNumber),
			zap.String("txid", txid.String()),
		)
	}

	selected, err := allSelected(ctx, h.relayerGate, h.socketGate)
	if err != nil {
		return fmt.Errorf("failed to check the relayer authorization: %w", err)
	}
	if !selected {
		h.metrics.RecordUnauthorizedSkip(h.cc.ChainID())

		return nil
	}

	if !isBootstrap {
		h.logIfAlreadySubmitted(blockNumber, txid)
	}

	res, err := h.cc.SubmitSignedPsbt(ctx, h.cc.Address(), packet)
	if err != nil {
		h.metrics.RecordFailedSubmission(h.cc.ChainID())

		return fmt.Errorf("failed to submit the signed psbt %s: %w", txid, err)
	}
	h.metrics.RecordSubmittedPsbt(h.cc.ChainID())

	h.logger.Info("successfully submitted the signed psbt",
		zap.Uint64("block", blockNumber),
		zap.String("txid", txid.String()),
		zap.String("tx_hash", res.TxHash),
	)

	if _, err := h.journal.SaveSubmission(h.cc.ChainID(), txid, blockNumber, res.TxHash); err != nil {
		h.logger.Warn("failed to record the psbt submission",
			zap.String("txid", txid.String()),
			zap.Error(err),
		)
	}

	return nil
}

func (h *OutboundHandler) reportDecodeFailure(blockNumber uint64, raw []byte, err error) {
	rawHex := hex.EncodeToString(raw)

	h.metrics.RecordDecodeFailure(h.cc.ChainID())
	h.logger.Error("error on decoding UnsignedPsbtSubmitted event",
		zap.Uint64("block", blockNumber),
		zap.String("psbt", rawHex),
		zap.Error(err),
	)

	h.reporter.CaptureMessage(
		fmt.Sprintf("[%s]-[%s]-[%s] Error on decoding UnsignedPsbtSubmitted event (%s): %s",
			h.cc.ChainName(), subLogTarget, h.cc.Address().Hex(), rawHex, err),
		diag.LevelError,
		map[string]string{
			"chain":   h.cc.ChainName(),
			"relayer": h.cc.Address().Hex(),
			"target":  subLogTarget,
		},
	)
}

func (h *OutboundHandler) logIfAlreadySubmitted(blockNumber uint64, txid chainhash.Hash) {
	submitted, err := h.journal.HasSubmission(h.cc.ChainID(), txid)
	if err != nil {
		h.logger.Warn("failed to read the submission journal", zap.String("txid", txid.String()), zap.Error(err))

		return
	}
	if submitted {
		h.logger.Info("psbt was already relayed by this relayer, submitting again",
			zap.Uint64("block", blockNumber),
			zap.String("txid", txid.String()),
		)
	}
}
