// Package cli implements the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/SunnyChopper/notion-assistant/internal/adapters/driven/config/file"
	"github.com/SunnyChopper/notion-assistant/internal/adapters/driven/embedding/openai"
	statefile "github.com/SunnyChopper/notion-assistant/internal/adapters/driven/storage/file"
	"github.com/SunnyChopper/notion-assistant/internal/adapters/driven/storage/sqlite"
	"github.com/SunnyChopper/notion-assistant/internal/chunker"
	"github.com/SunnyChopper/notion-assistant/internal/connectors/notion"
	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
	"github.com/SunnyChopper/notion-assistant/internal/core/services"
	"github.com/SunnyChopper/notion-assistant/internal/logger"
)

// version is stamped by Execute from the build.
var version string

// verbose gates debug and info logging.
var verbose bool

// Services wired at startup. Commands guard against nil so partial
// configuration degrades to a clear message instead of a panic.
var (
	appSettings    domain.Settings
	configStore    driven.ConfigStore
	indexerService driving.Indexer
	searchService  driving.SearchService
	graphService   driving.GraphReader
	pageService    driving.PageReader
	vectorStore    *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "notion-assistant",
	Short: "Index and search a Notion workspace locally",
	Long: `notion-assistant walks a Notion workspace from a root page, keeps a
local incremental index of every page it can reach, and answers
semantic searches against that index.

Pages are fingerprinted so repeat runs only re-embed what changed.
The page hierarchy is tracked as a graph you can inspect, and the
index is exposed to MCP-compatible AI assistants via 'mcp serve'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute wires the services and runs the root command. Called once
// from main with the build version.
func Execute(v string) error {
	version = v

	if err := initServices(); err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}
	defer closeServices()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

// initServices builds the adapter stack from configuration. Missing
// tokens leave the dependent services nil rather than failing, so
// commands like 'config' and 'version' always work.
func initServices() error {
	var err error
	configStore, err = configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	appSettings, err = configStore.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stateStore, err := statefile.NewStateStore(appSettings.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}

	graphService = services.NewGraphService(stateStore, appSettings.Notion.RootPageID)

	if appSettings.Embedding.IsConfigured() {
		embedder, err := openai.NewEmbeddingService(appSettings.Embedding)
		if err != nil {
			return fmt.Errorf("configure embeddings: %w", err)
		}

		vectorStore, err = sqlite.NewStore(appSettings.Storage.DataDir, embedder)
		if err != nil {
			return fmt.Errorf("open vector store: %w", err)
		}

		searchService = services.NewSearchService(vectorStore)
	}

	if appSettings.Notion.IsConfigured() {
		client, err := notion.NewClient(appSettings.Notion)
		if err != nil {
			return fmt.Errorf("configure notion client: %w", err)
		}

		fetcher := notion.NewFetcher(client)
		pageService = services.NewPageService(fetcher)

		if vectorStore != nil {
			splitter := chunker.New(
				chunker.WithChunkSize(appSettings.Index.ChunkSize),
				chunker.WithOverlap(appSettings.Index.ChunkOverlap),
			)
			indexerService = services.NewIndexer(
				fetcher, stateStore, vectorStore, splitter,
				appSettings.Index.EmbedWorkers,
			)
		}
	}

	return nil
}

func closeServices() {
	if vectorStore != nil {
		if err := vectorStore.Close(); err != nil {
			logger.Warn("Closing vector store: %v", err)
		}
	}
}

// resolveRootID picks the root page id from the argument or the
// configured default.
func resolveRootID(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if appSettings.Notion.RootPageID != "" {
		return appSettings.Notion.RootPageID, nil
	}
	return "", fmt.Errorf("%w: no root page id; pass one or run "+
		"'notion-assistant config set-root <page-id>'", domain.ErrNotConfigured)
}

// formatDuration renders run durations without sub-second noise.
func formatDuration(d time.Duration) string {
	if d >= time.Minute {
		return d.Round(time.Second).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
