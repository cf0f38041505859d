package driving

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// SearchService provides similarity search over the indexed corpus.
type SearchService interface {
	// Search returns the chunks most similar to the query, closest
	// first. An empty query fails with domain.ErrInvalidInput.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
