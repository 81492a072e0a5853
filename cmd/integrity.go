package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"asset-ledger/feature/integrity"

	"github.com/spf13/cobra"
)

var integrityJSON bool

// integrityCmd runs every check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the source objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(true, true)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Compare the live tables with the store models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(true, false)
	},
}

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Check that the source CSV objects exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(false, true)
	},
}

func runIntegrityChecks(schema, source bool) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	svc := integrity.NewService(a.storage, a.cfg.Storage.Bucket, a.sourceObjects(), a.db(), a.logger)
	failed := false

	if schema {
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if integrityJSON {
			if err := printJSON(report); err != nil {
				return err
			}
		} else {
			fmt.Println("\n=== Schema ===")
			tables := make([]string, 0, len(report.Tables))
			for name := range report.Tables {
				tables = append(tables, name)
			}
			sort.Strings(tables)
			for _, name := range tables {
				tbl := report.Tables[name]
				fmt.Printf("%s: %s\n", name, tbl.Status)
				if len(tbl.MissingColumns) > 0 {
					fmt.Printf("  missing: %s\n", strings.Join(tbl.MissingColumns, ", "))
				}
				for _, m := range tbl.TypeMismatches {
					fmt.Printf("  mismatch: %s\n", m)
				}
			}
			for _, e := range report.Errors {
				fmt.Printf("error: %s\n", e)
			}
		}
		failed = failed || !report.Matched
	}

	if source {
		report, err := svc.CheckSource(ctx)
		if err != nil {
			return fmt.Errorf("source check failed: %w", err)
		}
		if integrityJSON {
			if err := printJSON(report); err != nil {
				return err
			}
		} else {
			fmt.Println("\n=== Source ===")
			for _, obj := range report.Objects {
				switch {
				case obj.Present:
					fmt.Printf("%s: ok (%d bytes, %s)\n", obj.Name, obj.Size, obj.LastModified)
				case obj.Error != "":
					fmt.Printf("%s: error (%s)\n", obj.Name, obj.Error)
				default:
					fmt.Printf("%s: missing\n", obj.Name)
				}
			}
		}
		failed = failed || !report.Matched
	}

	if failed {
		return fmt.Errorf("integrity checks found problems")
	}
	return nil
}

func init() {
	integrityCmd.PersistentFlags().BoolVar(&integrityJSON, "json", false, "Print reports as JSON")

	integrityCmd.AddCommand(schemaCmd, sourceCmd)
	RootCmd.AddCommand(integrityCmd)
}
