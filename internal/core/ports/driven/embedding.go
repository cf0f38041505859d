package driven

import "context"

// EmbeddingService generates vector embeddings from text. The bundled
// SQLite vector store uses one to embed chunk and query text; a remote
// vector store that embeds server-side would not need it.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Any OpenAI-compatible /v1/embeddings endpoint
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one
	// request. More efficient than calling Embed in a loop.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request. Used at startup before committing to an index run.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
