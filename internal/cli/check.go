package cli

import (
	"github.com/spf13/cobra"

	"github.com/vietddude/airdrop-checker/internal/checker"
)

var checkCmd = &cobra.Command{
	Use:     "check <address> [address...]",
	Short:   "Check specific addresses",
	Example: "  airdrop check 0x742d35Cc6634C0532925a3b8D4C9db96C4b4d8b6",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	console := newConsole(cmd)
	console.Banner()
	console.CheckBanner(len(args))

	results, err := app.checker.CheckAddresses(cmd.Context(), args)
	if err != nil {
		app.logger.Error("Error checking addresses", "error", err)
		return err
	}

	console.Results(results)
	console.Statistics(checker.Statistics(results))
	return nil
}
