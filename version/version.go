package version

import (
	"fmt"
	"runtime/debug"
)

// version is overridden at build time with
// -ldflags "-X github.com/bifrost-platform/btc-relayer/version.version=<tag>"
var version = "main"

// CommitInfo returns the short vcs revision and commit time embedded by the
// go toolchain
func CommitInfo() (string, string) {
	hash, timestamp := "unknown", "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return hash, timestamp
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			hash = s.Value
			if len(hash) > 7 {
				hash = hash[:7]
			}
		case "vcs.time":
			timestamp = s.Value
		}
	}

	return hash, timestamp
}

func Version() string {
	return version
}

// String is the one line description attached to diagnostics
func String() string {
	commit, ts := CommitInfo()

	return fmt.Sprintf("version: %s, commit: %s, timestamp: %s", version, commit, ts)
}
