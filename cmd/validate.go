package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"asset-ledger/feature/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	keysFile        string
	validateJSON    bool
	validateRefresh bool
)

// validateCmd classifies keys against the inventories.
var validateCmd = &cobra.Command{
	Use:     "validate [keys...]",
	Aliases: []string{"reconcile"},
	Short:   "Classify asset keys as primary, secondary or unknown",
	Long: `Looks keys up in the store and then in the secondary inventory.
Keys come from the arguments and, with --file, one per line from a file ("-" for stdin).

Examples:
  validate K1 K9
  validate --file dump.txt --json
  validate --refresh K9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := append([]string{}, args...)
		if keysFile != "" {
			fromFile, err := readKeys(keysFile)
			if err != nil {
				return err
			}
			keys = append(keys, fromFile...)
		}
		if len(keys) == 0 {
			return cmd.Help()
		}

		ctx := context.Background()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		svc, err := a.validationService(ctx)
		if err != nil {
			return err
		}
		if validateRefresh {
			if err := svc.InvalidateSecondary(ctx); err != nil {
				return fmt.Errorf("failed to refresh secondary inventory: %w", err)
			}
		}
		report, err := svc.Validate(ctx, keys)
		if err != nil {
			return err
		}
		if report.Warning != "" {
			a.logger.Warn("Secondary inventory unavailable", zap.String("warning", report.Warning))
		}

		if validateJSON {
			return printJSON(report)
		}

		for _, r := range report.Results {
			fmt.Printf("%-24s %-10s %v\n", r.Key, r.Source, r.Found)
		}
		printSummary(report.Summary)
		return nil
	},
}

func printSummary(s validation.Summary) {
	fmt.Println("\n=== Validation Metrics ===")
	fmt.Printf("Total: %d\n", s.Total)
	fmt.Printf("Found: %d\n", s.Found)
	fmt.Printf("Not Found: %d\n", s.NotFound)
}

func readKeys(name string) ([]string, error) {
	f := os.Stdin
	if name != "-" {
		var err error
		if f, err = os.Open(name); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer f.Close()
	}

	var keys []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			keys = append(keys, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keys: %w", err)
	}
	return keys, nil
}

func init() {
	validateCmd.Flags().StringVar(&keysFile, "file", "", "File with one key per line (- for stdin)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the full report as JSON")
	validateCmd.Flags().BoolVar(&validateRefresh, "refresh", false, "Drop the cached secondary inventory before validating")

	RootCmd.AddCommand(validateCmd)
}
