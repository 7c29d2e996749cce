package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietddude/airdrop-checker/internal/checker"
	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

var fileCmd = &cobra.Command{
	Use:   "file <input.txt> [output.xlsx|output.csv]",
	Short: "Check addresses from a file",
	Example: `  airdrop file addresses.txt results.xlsx
  airdrop file wallets.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	input, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	console := newConsole(cmd)
	console.Banner()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reading addresses from: %s\n\n", input)

	results, err := app.checker.CheckAddressesFromFile(cmd.Context(), input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			app.logger.Error("File not found", "path", input)
		} else {
			app.logger.Error("Error checking addresses from file", "error", err)
		}
		return err
	}

	console.Results(results)
	console.Statistics(checker.Statistics(results))

	if len(args) < 2 {
		return nil
	}

	output, err := filepath.Abs(args[1])
	if err != nil {
		return err
	}
	if err := export(output, results); err != nil {
		app.logger.Error("Export failed", "path", output, "error", err)
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nResults exported to: %s\n", output)
	return nil
}

// export writes CSV for a .csv path and an xlsx workbook otherwise.
func export(path string, results []domain.EligibilityResult) error {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		data = []byte(checker.ExportCSV(results))
	} else {
		wb, err := checker.ExportWorkbook(results)
		if err != nil {
			return err
		}
		data = wb
	}
	return os.WriteFile(path, data, 0o644)
}
