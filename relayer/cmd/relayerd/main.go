package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bifrost-platform/btc-relayer/relayer/cmd/relayerd/daemon"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/version"
)

const BinaryName = "relayerd"

// NewRootCmd creates a new root command for relayerd. It is called once in the main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           BinaryName,
		Short:         fmt.Sprintf("%s - BTC outbound relayer daemon.", BinaryName),
		Long:          fmt.Sprintf(`%s relays the unsigned psbts of the socket queue to the relayer network.`, BinaryName),
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().String(daemon.HomeFlag, config.DefaultRelayerdDir, "The application home directory")

	return rootCmd
}

func main() {
	cmd := NewRootCmd()

	daemon.AddDaemonCommands(cmd, BinaryName)
	version.AddVersionCommand(cmd, BinaryName)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your relayerd CLI '%s'", err)
		os.Exit(1) //nolint:gocritic
	}
}
