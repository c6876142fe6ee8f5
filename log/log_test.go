package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bifrost-platform/btc-relayer/log"
)

func TestNewRootLogger(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"console", "json", "logfmt"} {
		var buf bytes.Buffer
		logger, err := log.NewRootLogger(format, "info", &buf)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("psbt event detected")
		require.NoError(t, logger.Sync())

		require.Contains(t, buf.String(), "psbt event detected", format)
		require.NotContains(t, buf.String(), "hidden", format)
	}

	_, err := log.NewRootLogger("xml", "info", &bytes.Buffer{})
	require.Error(t, err)

	_, err = log.NewRootLogger("json", "trace", &bytes.Buffer{})
	require.Error(t, err)
}
