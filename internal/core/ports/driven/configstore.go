package driven

import "github.com/SunnyChopper/notion-assistant/internal/core/domain"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// Load reads the settings from storage. A missing file yields
	// defaults, not an error.
	Load() (domain.Settings, error)

	// Save persists the settings to storage, creating the file with
	// owner-only permissions on first write.
	Save(settings domain.Settings) error

	// Path returns the configuration file path.
	Path() string
}
