package types

// RoundMetaData is a snapshot of the authority contract's round timing.
// Lengths are counted in blocks of the native chain.
type RoundMetaData struct {
	CurrentRoundIndex   uint64
	FirstSessionIndex   uint64
	CurrentSessionIndex uint64
	FirstRoundBlock     uint64
	FirstSessionBlock   uint64
	CurrentBlock        uint64
	RoundLength         uint64
	SessionLength       uint64
}
