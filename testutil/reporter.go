package testutil

import (
	"sync"

	"github.com/bifrost-platform/btc-relayer/diag"
)

type CapturedMessage struct {
	Msg   string
	Level diag.Level
	Tags  map[string]string
}

// RecordingReporter keeps every captured message in memory
type RecordingReporter struct {
	mu       sync.Mutex
	messages []CapturedMessage
}

var _ diag.Reporter = (*RecordingReporter)(nil)

func (r *RecordingReporter) CaptureMessage(msg string, level diag.Level, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, CapturedMessage{Msg: msg, Level: level, Tags: tags})
}

func (r *RecordingReporter) Close() {}

func (r *RecordingReporter) Messages() []CapturedMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]CapturedMessage(nil), r.messages...)
}
