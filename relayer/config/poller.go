package config

import (
	"fmt"
	"time"
)

var (
	defaultBufferSize      = uint32(1000)
	defaultPollingInterval = 3 * time.Second
	defaultPollSize        = uint32(1000)
	defaultMaxFailedCycles = uint32(20)
)

type ChainPollerConfig struct {
	BufferSize      uint32        `long:"buffersize" description:"The maximum number of imported blocks with target events that can be stored in the buffer"`
	PollInterval    time.Duration `long:"pollinterval" description:"The interval between each polling of event logs; the value should be set depending on the block production time"`
	PollSize        uint32        `long:"pollsize" description:"The maximum number of blocks covered by one log query"`
	MaxFailedCycles uint32        `long:"maxfailedcycles" description:"The number of consecutive failed polling cycles after which the event stream is closed"`
}

func DefaultChainPollerConfig() ChainPollerConfig {
	return ChainPollerConfig{
		BufferSize:      defaultBufferSize,
		PollInterval:    defaultPollingInterval,
		PollSize:        defaultPollSize,
		MaxFailedCycles: defaultMaxFailedCycles,
	}
}

func (c ChainPollerConfig) Validate() error {
	if c.BufferSize == 0 {
		return fmt.Errorf("invalid buffersize: %d", c.BufferSize)
	}

	if c.PollSize == 0 {
		return fmt.Errorf("invalid pollsize: %d", c.PollSize)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("invalid pollinterval: %v", c.PollInterval)
	}

	if c.MaxFailedCycles == 0 {
		return fmt.Errorf("invalid maxfailedcycles: %d", c.MaxFailedCycles)
	}

	return nil
}
