package daemon

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bifrost-platform/btc-relayer/relayer/config"
	"github.com/bifrost-platform/btc-relayer/relayer/store"
	"github.com/bifrost-platform/btc-relayer/types"
)

// CommandSubmissions returns the command listing the psbts this relayer
// submitted, read from the local journal
func CommandSubmissions(binaryName string) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "submissions",
		Aliases: []string{"ls"},
		Short:   "List the psbts submitted by this relayer.",
		Example: fmt.Sprintf(`%s submissions --home /home/user/.relayerd --chain-id 49088`, binaryName),
		Args:    cobra.NoArgs,
		RunE:    runSubmissionsCmd,
	}
	cmd.Flags().Uint32(chainFlag, 0, "Only list the submissions on this chain")

	return cmd
}

func runSubmissionsCmd(cmd *cobra.Command, _ []string) error {
	homePath, err := homePathFromFlags(cmd)
	if err != nil {
		return err
	}

	chainID, err := cmd.Flags().GetUint32(chainFlag)
	if err != nil {
		return fmt.Errorf("failed to read flag %s: %w", chainFlag, err)
	}

	cfg, err := config.LoadConfig(homePath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbBackend, err := cfg.DatabaseConfig.GetDBBackend()
	if err != nil {
		return fmt.Errorf("failed to create db backend: %w", err)
	}
	defer dbBackend.Close()

	s, err := store.NewSubmissionStore(dbBackend)
	if err != nil {
		return err
	}

	submissions, err := s.ListSubmissions()
	if err != nil {
		return err
	}

	filtered := make([]*store.StoredSubmission, 0, len(submissions))
	for _, sub := range submissions {
		if chainID == 0 || sub.ChainID == types.ChainID(chainID) {
			filtered = append(filtered, sub)
		}
	}

	jsonBytes, err := json.MarshalIndent(filtered, "", "    ")
	if err != nil {
		return err
	}
	cmd.Println(string(jsonBytes))

	return nil
}
