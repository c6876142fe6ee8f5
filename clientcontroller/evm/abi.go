package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	authorityABIJSON = `[
	{"type":"function","name":"round_info","stateMutability":"view","inputs":[],"outputs":[
		{"name":"current_round_index","type":"uint256"},
		{"name":"first_session_index","type":"uint256"},
		{"name":"current_session_index","type":"uint256"},
		{"name":"first_round_block","type":"uint256"},
		{"name":"first_session_block","type":"uint256"},
		{"name":"current_block","type":"uint256"},
		{"name":"round_length","type":"uint256"},
		{"name":"session_length","type":"uint256"}
	]}
]`

	relayerManagerABIJSON = `[
	{"type":"function","name":"latest_round","stateMutability":"view","inputs":[],"outputs":[
		{"name":"","type":"uint256"}
	]},
	{"type":"function","name":"is_previous_selected_relayer","stateMutability":"view","inputs":[
		{"name":"round_index","type":"uint256"},
		{"name":"relayer","type":"address"},
		{"name":"is_initial","type":"bool"}
	],"outputs":[
		{"name":"","type":"bool"}
	]}
]`

	socketQueueABIJSON = `[
	{"type":"event","name":"UnsignedPsbtSubmitted","anonymous":false,"inputs":[
		{"name":"psbt","type":"bytes","indexed":false}
	]},
	{"type":"function","name":"submit_signed_psbt","stateMutability":"nonpayable","inputs":[
		{"name":"psbt","type":"bytes"}
	],"outputs":[]}
]`
)

const (
	methodRoundInfo                 = "round_info"
	methodLatestRound               = "latest_round"
	methodIsPreviousSelectedRelayer = "is_previous_selected_relayer"
	methodSubmitSignedPsbt          = "submit_signed_psbt"
)

var (
	AuthorityABI      = mustParseABI(authorityABIJSON)
	RelayerManagerABI = mustParseABI(relayerManagerABIJSON)
	SocketQueueABI    = mustParseABI(socketQueueABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}

	return parsed
}
