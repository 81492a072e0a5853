package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"asset-ledger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asset-ledger",
	Short: "Asset Ledger Service",
	Long: `Asset Ledger keeps a canonical inventory of physical assets in sync with
external sheet exports and records every change in an append-only movement ledger.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config keeps CLI errors readable.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}

// printJSON writes v to stdout, indented.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
