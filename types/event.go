package types

import "github.com/ethereum/go-ethereum/common"

const (
	UnsignedPsbtSubmittedEventName = "UnsignedPsbtSubmitted"
)

// ExternalEvent is an opaque ledger event record. Handlers select the
// variants they care about with a type switch and ignore the rest.
type ExternalEvent interface {
	EventName() string
}

var (
	_ ExternalEvent = (*UnsignedPsbtSubmitted)(nil)
	_ ExternalEvent = (*UnknownEvent)(nil)
)

// UnsignedPsbtSubmitted carries the raw bytes of a partially signed bitcoin
// transaction that is waiting for relayer signatures.
type UnsignedPsbtSubmitted struct {
	Psbt []byte
}

func (e *UnsignedPsbtSubmitted) EventName() string {
	return UnsignedPsbtSubmittedEventName
}

// UnknownEvent is any log emitted by a watched contract that does not match a
// known event signature.
type UnknownEvent struct {
	Topic common.Hash
	Data  []byte
}

func (e *UnknownEvent) EventName() string {
	return e.Topic.Hex()
}

// EventMessage is the batch of target events imported from a single block.
type EventMessage struct {
	BlockNumber uint64
	Events      []ExternalEvent
}

func NewEventMessage(blockNumber uint64, events ...ExternalEvent) *EventMessage {
	return &EventMessage{
		BlockNumber: blockNumber,
		Events:      events,
	}
}
