package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SunnyChopper/notion-assistant/internal/adapters/driven/embedding/openai"
	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and update the stored configuration: the Notion integration
token, the OpenAI API key, the root page, and indexing options.

Secrets can also be supplied through the NOTION_TOKEN and
OPENAI_API_KEY environment variables, which override the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token",
	Short: "Set the Notion integration token",
	RunE:  runConfigSetToken,
}

var configSetOpenAIKeyCmd = &cobra.Command{
	Use:   "set-openai-key",
	Short: "Set the OpenAI API key",
	RunE:  runConfigSetOpenAIKey,
}

var configSetRootCmd = &cobra.Command{
	Use:   "set-root [page-id]",
	Short: "Set the root page the indexer starts from",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetRoot,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetTokenCmd)
	configCmd.AddCommand(configSetOpenAIKeyCmd)
	configCmd.AddCommand(configSetRootCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Notion]")
	if settings.Notion.Token != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.Notion.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	if settings.Notion.RootPageID != "" {
		cmd.Printf("  Root page: %s\n", settings.Notion.RootPageID)
	} else {
		cmd.Printf("  Root page: (not set)\n")
	}
	cmd.Printf("  Requests/s: %.1f\n", settings.Notion.RequestsPerSecond)
	status := "configured"
	if !settings.Notion.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[OpenAI]")
	if settings.Embedding.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Embedding.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Model: %s\n", settings.Embedding.Model)
	cmd.Printf("  Base URL: %s\n", settings.Embedding.BaseURL)
	status = "configured"
	if !settings.Embedding.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Index]")
	cmd.Printf("  Chunk size: %d\n", settings.Index.ChunkSize)
	cmd.Printf("  Chunk overlap: %d\n", settings.Index.ChunkOverlap)
	cmd.Printf("  Embed workers: %d\n", settings.Index.EmbedWorkers)
	cmd.Println()

	cmd.Println("[Storage]")
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()

	cmd.Printf("Config file: %s\n", configStore.Path())

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runConfigSetToken(cmd *cobra.Command, _ []string) error {
	cmd.Print("Enter Notion integration token: ")
	token := readPassword()
	cmd.Println()
	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := updateSettings(func(s *domain.Settings) {
		s.Notion.Token = token
	}); err != nil {
		return err
	}

	cmd.Printf("Token saved to %s\n", configStore.Path())
	return nil
}

func runConfigSetOpenAIKey(cmd *cobra.Command, _ []string) error {
	cmd.Print("Enter OpenAI API key: ")
	apiKey := readPassword()
	cmd.Println()
	if apiKey == "" {
		return errors.New("API key must not be empty")
	}

	if err := updateSettings(func(s *domain.Settings) {
		s.Embedding.APIKey = apiKey
	}); err != nil {
		return err
	}

	// Validate the key by pinging the API.
	cmd.Print("Validating key... ")
	embedder, err := openai.NewEmbeddingService(domain.EmbeddingSettings{APIKey: apiKey})
	if err == nil {
		err = embedder.Ping(cmd.Context())
	}
	if err != nil {
		cmd.Printf("FAILED: %v\n", err)
		cmd.Println("The key was saved anyway; fix it and re-run if needed.")
		return nil
	}
	cmd.Println("OK")

	cmd.Printf("API key saved to %s\n", configStore.Path())
	return nil
}

func runConfigSetRoot(cmd *cobra.Command, args []string) error {
	rootID := strings.TrimSpace(args[0])
	if rootID == "" {
		return errors.New("page id must not be empty")
	}

	if err := updateSettings(func(s *domain.Settings) {
		s.Notion.RootPageID = rootID
	}); err != nil {
		return err
	}

	cmd.Printf("Root page set to %s\n", rootID)
	return nil
}

// updateSettings applies a mutation on top of the stored configuration
// and persists the result.
func updateSettings(mutate func(*domain.Settings)) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	mutate(&settings)

	if err := configStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	appSettings = settings
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
