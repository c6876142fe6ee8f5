package diag

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/version"
)

const flushTimeout = 2 * time.Second

type Level = sentry.Level

const (
	LevelWarning = sentry.LevelWarning
	LevelError   = sentry.LevelError
)

// Reporter mirrors diagnostic messages to an external error tracking service.
// Implementations must not block the caller and never fail it.
type Reporter interface {
	CaptureMessage(msg string, level Level, tags map[string]string)
	Close()
}

var (
	_ Reporter = (*SentryReporter)(nil)
	_ Reporter = NopReporter{}
)

type SentryReporter struct {
	hub    *sentry.Hub
	logger *zap.Logger
}

// NewReporter returns a Sentry backed reporter, or a no-op reporter when no
// DSN is configured.
func NewReporter(cfg *config.SentryConfig, logger *zap.Logger) (Reporter, error) {
	if cfg == nil || cfg.DSN == "" {
		logger.Info("sentry dsn is not set, error reporting is disabled")

		return NopReporter{}, nil
	}

	return NewSentryReporter(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     version.Version(),
		SampleRate:  cfg.SampleRate,
	}, logger)
}

func NewSentryReporter(opts sentry.ClientOptions, logger *zap.Logger) (*SentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &SentryReporter{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		logger: logger,
	}, nil
}

// CaptureMessage queues the message on the sentry transport and returns
// immediately.
func (r *SentryReporter) CaptureMessage(msg string, level Level, tags map[string]string) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		scope.SetTags(tags)
		if id := r.hub.CaptureMessage(msg); id == nil {
			r.logger.Debug("sentry dropped the diagnostic message", zap.String("msg", msg))
		}
	})
}

func (r *SentryReporter) Close() {
	if !r.hub.Flush(flushTimeout) {
		r.logger.Warn("timed out flushing sentry events")
	}
}

type NopReporter struct{}

func (NopReporter) CaptureMessage(string, Level, map[string]string) {}

func (NopReporter) Close() {}
