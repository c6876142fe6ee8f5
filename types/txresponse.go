package types

type TxResponse struct {
	TxHash      string
	BlockNumber uint64
}
