package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
	"github.com/SunnyChopper/notion-assistant/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers similarity queries against the indexed corpus.
type SearchService struct {
	vectorStore driven.VectorStore
}

// NewSearchService creates a new search service.
func NewSearchService(vectorStore driven.VectorStore) *SearchService {
	return &SearchService{vectorStore: vectorStore}
}

// Search runs a similarity search and returns ranked results.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", domain.ErrInvalidInput)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	logger.Debug("Search: query=%q, limit=%d", query, limit)

	results, err := s.vectorStore.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Debug("Search: %d results", len(results))
	return results, nil
}
