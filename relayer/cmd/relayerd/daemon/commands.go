package daemon

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bifrost-platform/btc-relayer/util"
)

// AddDaemonCommands adds the daemon related commands to the root command
func AddDaemonCommands(cmd *cobra.Command, binaryName string) {
	cmd.AddCommand(
		CommandInit(binaryName),
		CommandStart(binaryName),
		CommandSubmissions(binaryName),
	)
}

func homePathFromFlags(cmd *cobra.Command) (string, error) {
	home, err := cmd.Flags().GetString(HomeFlag)
	if err != nil {
		return "", fmt.Errorf("failed to read flag %s: %w", HomeFlag, err)
	}

	homePath, err := filepath.Abs(home)
	if err != nil {
		return "", fmt.Errorf("failed to get home path: %w", err)
	}

	return util.CleanAndExpandPath(homePath), nil
}
