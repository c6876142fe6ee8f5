package config

import "fmt"

const (
	// DefaultBootstrapRoundOffset is the number of rounds replayed when the
	// bootstrap window does not set one.
	DefaultBootstrapRoundOffset = uint32(3)
	// MaxBootstrapRoundOffset bounds the replay window
	MaxBootstrapRoundOffset = uint32(100)
)

type BootstrapConfig struct {
	Enabled     bool   `long:"enabled" description:"Replay historical events before streaming new ones"`
	RoundOffset uint32 `long:"roundoffset" description:"The number of past rounds to replay; 0 uses the default"`
}

func DefaultBootstrapConfig() BootstrapConfig {
	return BootstrapConfig{
		Enabled:     true,
		RoundOffset: DefaultBootstrapRoundOffset,
	}
}

// GetRoundOffset returns the configured round offset, falling back to the
// default when unset.
func (c *BootstrapConfig) GetRoundOffset() uint32 {
	if c.RoundOffset == 0 {
		return DefaultBootstrapRoundOffset
	}

	return c.RoundOffset
}

func (c *BootstrapConfig) Validate() error {
	if c.RoundOffset > MaxBootstrapRoundOffset {
		return fmt.Errorf("bootstrap round offset must not exceed %d, got %d", MaxBootstrapRoundOffset, c.RoundOffset)
	}

	return nil
}
