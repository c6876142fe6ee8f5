package testutil

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	usedPortsMu sync.Mutex
	usedPorts   = make(map[int]struct{})
)

// AllocateUniquePort returns a free localhost tcp port that no other test of
// this process received before.
func AllocateUniquePort(t *testing.T) int {
	t.Helper()

	usedPortsMu.Lock()
	defer usedPortsMu.Unlock()

	for attempt := 0; attempt < 10; attempt++ {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		port := listener.Addr().(*net.TCPAddr).Port
		require.NoError(t, listener.Close())

		if _, taken := usedPorts[port]; taken {
			continue
		}
		usedPorts[port] = struct{}{}

		return port
	}

	t.Fatal("failed to allocate a unique port")

	return 0
}
