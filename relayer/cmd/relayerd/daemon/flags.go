package daemon

const (
	HomeFlag  = "home"
	forceFlag = "force"
	chainFlag = "chain-id"
)
