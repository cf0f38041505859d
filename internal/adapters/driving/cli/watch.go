package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SunnyChopper/notion-assistant/internal/core/services"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [root-page-id]",
	Short: "Re-index the workspace on an interval",
	Long: `Runs the indexer immediately, then again on every interval until
interrupted. Unchanged pages are skipped on each pass, so steady-state
passes are cheap.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 5*time.Minute, "time between passes")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if indexerService == nil {
		return errors.New("indexer not configured; set the notion token and openai api key first")
	}
	if watchInterval <= 0 {
		return errors.New("interval must be positive")
	}

	rootID, err := resolveRootID(args)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s every %s. Press Ctrl+C to stop.\n", rootID, watchInterval)

	watcher := services.NewWatcher(indexerService, rootID, watchInterval)
	if err := watcher.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Println("Watch stopped.")
	return nil
}
