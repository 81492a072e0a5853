package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var staleMinutes int

// syncCmd is the parent command for synchronization operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the primary source into the store",
}

var syncRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one synchronization",
	Long: `Fetches the primary source, diffs it against the store and writes new and
changed items with their movements in batches. Fails if a run is already in progress.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		start := time.Now()
		result, err := a.syncService().Run(ctx)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		fmt.Println("\n=== Sync Metrics ===")
		fmt.Printf("Run: %s\n", result.RunID)
		fmt.Printf("Processed: %d\n", result.Processed)
		fmt.Printf("Added: %d\n", result.Added)
		fmt.Printf("Updated: %d\n", result.Updated)
		fmt.Printf("Unchanged: %d\n", result.Unchanged)
		fmt.Printf("Malformed: %d\n", result.Malformed)
		fmt.Printf("Execution Time: %s\n", time.Since(start))
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest synchronization run",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		run, err := a.syncService().LatestRun(ctx)
		if err != nil {
			return err
		}
		if run == nil {
			fmt.Println("No sync run recorded")
			return nil
		}
		return printJSON(run)
	},
}

var syncFixStaleCmd = &cobra.Command{
	Use:   "fix-stale",
	Short: "Close runs stuck in progress",
	Long:  `Marks runs in progress for longer than --minutes as completed, using the current item count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		fixed, err := a.syncService().FixStale(ctx, staleMinutes)
		if err != nil {
			return err
		}
		a.logger.Info("Stale run repair completed", zap.Int("fixed", fixed))
		fmt.Printf("Fixed: %d\n", fixed)
		return nil
	},
}

func init() {
	syncFixStaleCmd.Flags().IntVar(&staleMinutes, "minutes", 0, "Staleness threshold in minutes (default sync.stale_minutes)")

	syncCmd.AddCommand(syncRunCmd, syncStatusCmd, syncFixStaleCmd)
	RootCmd.AddCommand(syncCmd)
}
