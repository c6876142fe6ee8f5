package types

import "strconv"

// ChainID identifies a ledger managed by the relayer.
type ChainID uint32

func (id ChainID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
