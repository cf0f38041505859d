package driven

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// VectorStore embeds and stores chunk text for similarity search. It
// is an opaque dependency: embedding happens behind this interface and
// its consistency guarantees are inherited, not reimplemented.
type VectorStore interface {
	// AddTexts embeds and stores the texts with their metadata.
	// texts[i] is tagged with metadatas[i]; the two slices must be the
	// same length.
	AddTexts(ctx context.Context, texts []string, metadatas []domain.ChunkMetadata) error

	// DeleteByPage removes every stored vector tagged with the page id.
	// Deleting an id the store has never seen is not an error.
	DeleteByPage(ctx context.Context, pageID string) error

	// Search returns the k most similar chunks to the query text,
	// closest first.
	Search(ctx context.Context, query string, k int) ([]domain.SearchResult, error)

	// Close releases resources.
	Close() error
}
