package types

// BootstrapState is the lifecycle phase shared by every handler of a relayer
// process.
type BootstrapState uint8

const (
	// NodeSyncing means at least one managed node is still syncing.
	NodeSyncing BootstrapState = iota
	// BootstrapInProgress means handlers replay historical events.
	BootstrapInProgress
	// NormalStart means every handler consumes the live event stream.
	NormalStart
)

func (s BootstrapState) String() string {
	switch s {
	case NodeSyncing:
		return "NodeSyncing"
	case BootstrapInProgress:
		return "BootstrapInProgress"
	case NormalStart:
		return "NormalStart"
	default:
		return "Unknown"
	}
}
