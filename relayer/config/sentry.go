package config

import "fmt"

type SentryConfig struct {
	DSN         string  `long:"dsn" description:"The Sentry DSN errors are reported to; empty disables reporting"`
	Environment string  `long:"environment" description:"The environment tag attached to reported errors"`
	SampleRate  float64 `long:"samplerate" description:"The sample rate of reported errors, between 0 and 1"`
}

func DefaultSentryConfig() SentryConfig {
	return SentryConfig{
		Environment: "mainnet",
		SampleRate:  1.0,
	}
}

func (c *SentryConfig) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("sentry sample rate must be between 0 and 1, got %v", c.SampleRate)
	}

	return nil
}
