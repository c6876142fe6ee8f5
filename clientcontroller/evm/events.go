package evm

import (
	"sort"

	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/bifrost-platform/btc-relayer/types"
)

// ToEventMessages groups the logs per block in ascending block order. Logs
// removed by a reorg are dropped.
func ToEventMessages(logs []ethtypes.Log) []*types.EventMessage {
	sorted := make([]ethtypes.Log, 0, len(logs))
	for _, l := range logs {
		if !l.Removed {
			sorted = append(sorted, l)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BlockNumber != sorted[j].BlockNumber {
			return sorted[i].BlockNumber < sorted[j].BlockNumber
		}
		return sorted[i].Index < sorted[j].Index
	})

	var msgs []*types.EventMessage
	for _, l := range sorted {
		ev := parseLog(l)

		if n := len(msgs); n > 0 && msgs[n-1].BlockNumber == l.BlockNumber {
			msgs[n-1].Events = append(msgs[n-1].Events, ev)
			continue
		}
		msgs = append(msgs, types.NewEventMessage(l.BlockNumber, ev))
	}

	return msgs
}

func parseLog(l ethtypes.Log) types.ExternalEvent {
	if len(l.Topics) == 0 {
		return &types.UnknownEvent{Data: l.Data}
	}

	event := SocketQueueABI.Events[types.UnsignedPsbtSubmittedEventName]
	if l.Topics[0] != event.ID {
		return &types.UnknownEvent{Topic: l.Topics[0], Data: l.Data}
	}

	// a malformed payload is kept as is so that the psbt decoding rejects
	// and reports it instead of failing the whole block range
	values, err := event.Inputs.Unpack(l.Data)
	if err != nil || len(values) != 1 {
		return &types.UnsignedPsbtSubmitted{Psbt: l.Data}
	}
	raw, ok := values[0].([]byte)
	if !ok {
		return &types.UnsignedPsbtSubmitted{Psbt: l.Data}
	}

	return &types.UnsignedPsbtSubmitted{Psbt: raw}
}
