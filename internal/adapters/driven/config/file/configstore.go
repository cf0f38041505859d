package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Environment variables that override file values. Tokens from the
// environment never get written back to disk.
const (
	EnvNotionToken  = "NOTION_TOKEN"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

const configFile = "config.toml"

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Settings are stored as a typed document in the
// application config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewConfigStore creates a TOML-based config store. If configDir is
// empty, it defaults to ~/.notion-assistant.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".notion-assistant")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, configFile),
	}, nil
}

// Load reads settings from the config file. A missing file yields the
// defaults. Environment variables override file values for secrets so
// CI and one-off runs never need a config file on disk.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
		// No config file yet, start from defaults.
	case err != nil:
		return domain.Settings{}, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return domain.Settings{}, fmt.Errorf("parse %s: %w", configFile, err)
		}
	}

	if token := os.Getenv(EnvNotionToken); token != "" {
		settings.Notion.Token = token
	}
	if key := os.Getenv(EnvOpenAIAPIKey); key != "" {
		settings.Embedding.APIKey = key
	}

	return settings.Normalized(), nil
}

// Save persists the settings to disk with restricted permissions.
func (s *ConfigStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
