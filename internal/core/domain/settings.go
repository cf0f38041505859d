package domain

import "fmt"

// Default configuration values.
const (
	// DefaultEmbeddingModel is the embedding model used when none is
	// configured.
	DefaultEmbeddingModel = "text-embedding-3-small"

	// DefaultEmbeddingBaseURL is the OpenAI-compatible API endpoint.
	DefaultEmbeddingBaseURL = "https://api.openai.com/v1"

	// DefaultChunkSize is the target chunk window size in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the overlap between consecutive windows.
	DefaultChunkOverlap = 200

	// DefaultEmbedWorkers bounds the per-page chunk submission fan-out.
	DefaultEmbedWorkers = 4

	// DefaultRequestsPerSecond is the Notion API request budget.
	DefaultRequestsPerSecond = 3
)

// NotionSettings holds source API configuration.
type NotionSettings struct {
	// Token is the internal-integration bearer token.
	Token string `toml:"token"`

	// RootPageID is the page the traversal starts from.
	RootPageID string `toml:"root_page_id"`

	// RequestsPerSecond caps calls against the source API.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// IsConfigured returns true if the source can be reached.
func (n NotionSettings) IsConfigured() bool {
	return n.Token != ""
}

// EmbeddingSettings holds embedding provider configuration for any
// OpenAI-compatible endpoint.
type EmbeddingSettings struct {
	// APIKey authenticates against the embeddings endpoint.
	APIKey string `toml:"api_key"`

	// Model is the embedding model name.
	Model string `toml:"model"`

	// BaseURL is the API endpoint.
	BaseURL string `toml:"base_url"`
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	return e.APIKey != ""
}

// IndexSettings holds chunking and pipeline configuration.
type IndexSettings struct {
	// ChunkSize is the target window size in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the overlap between consecutive windows.
	ChunkOverlap int `toml:"chunk_overlap"`

	// EmbedWorkers bounds the concurrent chunk submissions per page.
	EmbedWorkers int `toml:"embed_workers"`
}

// StorageSettings holds local persistence configuration.
type StorageSettings struct {
	// DataDir is the directory holding the state blobs and the vector
	// database. Empty means the per-user default.
	DataDir string `toml:"data_dir"`
}

// Settings holds all application settings, one section per concern.
type Settings struct {
	// Notion holds source API settings.
	Notion NotionSettings `toml:"notion"`

	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings `toml:"openai"`

	// Index holds chunking and pipeline settings.
	Index IndexSettings `toml:"index"`

	// Storage holds local persistence settings.
	Storage StorageSettings `toml:"storage"`
}

// DefaultSettings returns settings with sensible defaults. Tokens are
// left empty; users provide them via config or environment.
func DefaultSettings() Settings {
	return Settings{
		Notion: NotionSettings{
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Embedding: EmbeddingSettings{
			Model:   DefaultEmbeddingModel,
			BaseURL: DefaultEmbeddingBaseURL,
		},
		Index: IndexSettings{
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
			EmbedWorkers: DefaultEmbedWorkers,
		},
	}
}

// Validate checks the settings for values that cannot work. Zero
// values are allowed (defaults apply); contradictory values are not.
func (s Settings) Validate() error {
	if s.Index.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk_size must not be negative", ErrInvalidInput)
	}
	if s.Index.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk_overlap must not be negative", ErrInvalidInput)
	}
	if s.Index.ChunkSize > 0 && s.Index.ChunkOverlap >= s.Index.ChunkSize {
		return fmt.Errorf("%w: chunk_overlap must be smaller than chunk_size", ErrInvalidInput)
	}
	if s.Index.EmbedWorkers < 0 {
		return fmt.Errorf("%w: embed_workers must not be negative", ErrInvalidInput)
	}
	if s.Notion.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests_per_second must not be negative", ErrInvalidInput)
	}
	return nil
}

// Normalized returns a copy with zero values replaced by defaults.
func (s Settings) Normalized() Settings {
	out := s
	if out.Notion.RequestsPerSecond == 0 {
		out.Notion.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if out.Embedding.Model == "" {
		out.Embedding.Model = DefaultEmbeddingModel
	}
	if out.Embedding.BaseURL == "" {
		out.Embedding.BaseURL = DefaultEmbeddingBaseURL
	}
	if out.Index.ChunkSize == 0 {
		out.Index.ChunkSize = DefaultChunkSize
	}
	if out.Index.ChunkOverlap == 0 {
		out.Index.ChunkOverlap = DefaultChunkOverlap
	}
	if out.Index.ChunkOverlap >= out.Index.ChunkSize {
		out.Index.ChunkOverlap = out.Index.ChunkSize / 4
	}
	if out.Index.EmbedWorkers == 0 {
		out.Index.EmbedWorkers = DefaultEmbedWorkers
	}
	return out
}
