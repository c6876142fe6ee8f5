package metrics_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/testutil"
	"github.com/bifrost-platform/btc-relayer/types"
)

func TestStart_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewRelayerMetrics(reg)
	m.RecordSubmittedPsbt(types.ChainID(1))

	cfg := metrics.DefaultConfig()
	cfg.Port = testutil.AllocateUniquePort(t)
	addr, err := cfg.Address()
	require.NoError(t, err)

	srv := metrics.Start(addr, reg, zap.NewNop())
	defer func() {
		require.NoError(t, srv.Shutdown(context.Background()))
	}()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/metrics", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}
		body = string(raw)

		return true
	}, 5*time.Second, 50*time.Millisecond)

	require.Contains(t, body, `relayer_submitted_psbts_total{chain="1"} 1`)
}
