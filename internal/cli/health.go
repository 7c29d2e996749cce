package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the airdrop API is reachable",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	if !app.client.HealthCheck(cmd.Context()) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API is unreachable")
		return errors.New("health check failed")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API is healthy")
	return nil
}
