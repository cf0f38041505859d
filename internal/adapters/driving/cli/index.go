package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
)

var indexCmd = &cobra.Command{
	Use:   "index [root-page-id]",
	Short: "Index the workspace from a root page",
	Long: `Walks the workspace depth-first from the root page and indexes every
reachable page. Pages whose content is unchanged since the last run
are skipped; new and modified pages are chunked and embedded.

The root page id defaults to the configured root
('notion-assistant config set-root').`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexerService == nil {
		return errors.New("indexer not configured; set the notion token and openai api key first")
	}

	rootID, err := resolveRootID(args)
	if err != nil {
		return err
	}

	cmd.Printf("Indexing workspace from %s...\n", rootID)

	started := time.Now()
	graph, err := indexWithProgress(cmd.Context(), cmd, indexerService, rootID)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	progress := indexerService.Progress()
	cmd.Println("Index complete.")
	cmd.Printf("  Pages:    %d visited, %d indexed, %d skipped\n",
		progress.PagesVisited, progress.PagesIndexed, progress.PagesSkipped)
	cmd.Printf("  Chunks:   %d submitted, %d failed\n",
		progress.ChunksSubmitted, progress.ChunksFailed)
	cmd.Printf("  Graph:    %d pages, %d connections\n",
		graph.NodeCount(), graph.EdgeCount())
	if vectorStore != nil {
		if count, countErr := vectorStore.Count(cmd.Context()); countErr == nil {
			cmd.Printf("  Stored:   %d chunks total\n", count)
		}
	}
	cmd.Printf("  Duration: %s\n", formatDuration(time.Since(started)))

	return nil
}

// indexWithProgress runs the indexer while showing progress updates.
func indexWithProgress(
	ctx context.Context,
	cmd *cobra.Command,
	indexer driving.Indexer,
	rootID string,
) (*domain.Graph, error) {
	type result struct {
		graph *domain.Graph
		err   error
	}

	resCh := make(chan result, 1)
	go func() {
		graph, err := indexer.Run(ctx, rootID)
		resCh <- result{graph: graph, err: err}
	}()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	lastVisited := -1
	for {
		select {
		case res := <-resCh:
			if lastVisited >= 0 {
				cmd.Println()
			}
			return res.graph, res.err
		case <-ticker.C:
			progress := indexer.Progress()
			if progress.PagesVisited > lastVisited {
				cmd.Printf("\rVisited %d of %d discovered pages (%d indexed)...",
					progress.PagesVisited, progress.TotalDiscovered, progress.PagesIndexed)
				lastVisited = progress.PagesVisited
			}
		}
	}
}
