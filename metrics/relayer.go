package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bifrost-platform/btc-relayer/types"
)

type RelayerMetrics struct {
	processedEvents      *prometheus.CounterVec
	decodeFailures       *prometheus.CounterVec
	unauthorizedSkips    *prometheus.CounterVec
	submittedPsbts       *prometheus.CounterVec
	failedSubmissions    *prometheus.CounterVec
	bootstrapCompletions *prometheus.CounterVec
	lastProcessedBlock   *prometheus.GaugeVec
	lastPolledBlock      *prometheus.GaugeVec
	isStreaming          prometheus.Gauge
}

// NewRelayerMetrics creates the relayer metrics and registers them with the
// given registerer.
func NewRelayerMetrics(reg prometheus.Registerer) *RelayerMetrics {
	m := &RelayerMetrics{
		processedEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relayer_processed_psbt_events_total",
				Help: "The number of UnsignedPsbtSubmitted events processed",
			},
			[]string{"chain", "source"},
		),
		decodeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relayer_psbt_decode_failures_total",
				Help: "The number of psbt artifacts that could not be decoded",
			},
			[]string{"chain"},
		),
		unauthorizedSkips: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relayer_unauthorized_skips_total",
				Help: "The number of psbt events skipped because the relayer was not selected",
			},
			[]string{"chain"},
		),
		submittedPsbts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relayer_submitted_psbts_total",
				Help: "The number of signed psbts submitted",
			},
			[]string{"chain"},
		),
		failedSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relayer_failed_psbt_submissions_total",
				Help: "The number of signed psbt submissions that failed",
			},
			[]string{"chain"},
		),
		bootstrapCompletions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relayer_bootstrap_completions_total",
				Help: "The number of completed bootstrap replays",
			},
			[]string{"chain"},
		),
		lastProcessedBlock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "relayer_last_processed_block",
				Help: "The last block whose events were processed",
			},
			[]string{"chain"},
		),
		lastPolledBlock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "relayer_last_polled_block",
				Help: "The last block polled for events",
			},
			[]string{"chain"},
		),
		isStreaming: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "relayer_is_streaming",
				Help: "1 once every managed chain finished its bootstrap replay",
			},
		),
	}

	reg.MustRegister(
		m.processedEvents,
		m.decodeFailures,
		m.unauthorizedSkips,
		m.submittedPsbts,
		m.failedSubmissions,
		m.bootstrapCompletions,
		m.lastProcessedBlock,
		m.lastPolledBlock,
		m.isStreaming,
	)

	return m
}

func sourceLabel(isBootstrap bool) string {
	if isBootstrap {
		return "bootstrap"
	}

	return "stream"
}

func (m *RelayerMetrics) RecordProcessedEvent(chain types.ChainID, isBootstrap bool) {
	m.processedEvents.WithLabelValues(chain.String(), sourceLabel(isBootstrap)).Inc()
}

func (m *RelayerMetrics) RecordDecodeFailure(chain types.ChainID) {
	m.decodeFailures.WithLabelValues(chain.String()).Inc()
}

func (m *RelayerMetrics) RecordUnauthorizedSkip(chain types.ChainID) {
	m.unauthorizedSkips.WithLabelValues(chain.String()).Inc()
}

func (m *RelayerMetrics) RecordSubmittedPsbt(chain types.ChainID) {
	m.submittedPsbts.WithLabelValues(chain.String()).Inc()
}

func (m *RelayerMetrics) RecordFailedSubmission(chain types.ChainID) {
	m.failedSubmissions.WithLabelValues(chain.String()).Inc()
}

func (m *RelayerMetrics) RecordBootstrapCompletion(chain types.ChainID) {
	m.bootstrapCompletions.WithLabelValues(chain.String()).Inc()
}

func (m *RelayerMetrics) RecordLastProcessedBlock(chain types.ChainID, height uint64) {
	m.lastProcessedBlock.WithLabelValues(chain.String()).Set(float64(height))
}

func (m *RelayerMetrics) RecordLastPolledBlock(chain types.ChainID, height uint64) {
	m.lastPolledBlock.WithLabelValues(chain.String()).Set(float64(height))
}

func (m *RelayerMetrics) RecordStreaming() {
	m.isStreaming.Set(1)
}
