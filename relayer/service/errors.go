package service

import (
	"errors"
	"fmt"

	"github.com/bifrost-platform/btc-relayer/types"
)

const handlerTerminatingMsg = "terminating the relayer due to critical error"

// CriticalError is a fatal failure of the handler of one chain
type CriticalError struct {
	err     error
	chainID types.ChainID
}

func (ce *CriticalError) Error() string {
	return fmt.Sprintf("critical err on the outbound handler of chain %d: %s", ce.chainID, ce.err.Error())
}

func (ce *CriticalError) Unwrap() error {
	return ce.err
}

var (
	// ErrNoNativeChain means no managed chain hosts the round registry, so
	// the bootstrap window cannot be converted into blocks
	ErrNoNativeChain = errors.New("no native chain is configured, cannot determine the round reference clock")

	// ErrEventStreamClosed means the live event stream of the handler ended
	ErrEventStreamClosed = errors.New("the event stream is closed")

	ErrPollerStopped = errors.New("the event poller is stopped")
)
