package daemon

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bifrost-platform/btc-relayer/clientcontroller"
	"github.com/bifrost-platform/btc-relayer/clientcontroller/api"
	"github.com/bifrost-platform/btc-relayer/diag"
	"github.com/bifrost-platform/btc-relayer/log"
	"github.com/bifrost-platform/btc-relayer/metrics"
	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/relayer/service"
)

// CommandStart returns the start command of relayerd
func CommandStart(binaryName string) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "start",
		Short:   "Start the relayer daemon.",
		Long:    `Start relaying the unsigned psbts of every configured chain. The relayer key is read from the config or the RELAYER_KEY environment variable.`,
		Example: fmt.Sprintf(`%s start --home /home/user/.relayerd`, binaryName),
		Args:    cobra.NoArgs,
		RunE:    runStartCmd,
	}

	return cmd
}

func runStartCmd(cmd *cobra.Command, _ []string) error {
	homePath, err := homePathFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(homePath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := log.NewRootLoggerWithFile(config.LogFile(homePath), cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize the logger: %w", err)
	}

	reporter, err := diag.NewReporter(cfg.SentryConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize the error reporter: %w", err)
	}

	clients, err := clientcontroller.NewChainClients(cmd.Context(), cfg, logger)
	if err != nil {
		reporter.Close()

		return fmt.Errorf("failed to connect to the managed chains: %w", err)
	}

	dbBackend, err := cfg.DatabaseConfig.GetDBBackend()
	if err != nil {
		closeAll(clients, reporter)

		return fmt.Errorf("failed to create db backend: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := service.NewRelayerApp(cfg, clients, dbBackend, reporter, metrics.NewRelayerMetrics(registry), logger)
	if err != nil {
		_ = dbBackend.Close()
		closeAll(clients, reporter)

		return fmt.Errorf("failed to create relayer app: %w", err)
	}

	logger.Info("starting the relayer", zap.Int("chains", len(clients)), zap.String("home", homePath))

	server := service.NewRelayerServer(cfg, logger, app, dbBackend, registry)
	if err := server.RunUntilShutdown(cmd.Context()); err != nil {
		return fmt.Errorf("the relayer stopped on a critical error: %w", err)
	}

	return nil
}

func closeAll(clients []api.ChainClient, reporter diag.Reporter) {
	for _, cc := range clients {
		_ = cc.Close()
	}
	reporter.Close()
}
