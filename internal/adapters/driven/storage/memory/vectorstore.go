package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

type storedText struct {
	content  string
	metadata domain.ChunkMetadata
}

// VectorStore is an in-memory implementation of driven.VectorStore.
// Search uses term overlap instead of embeddings, which is enough for
// tests and for running without an embedding provider.
type VectorStore struct {
	mu    sync.RWMutex
	texts []storedText
}

// NewVectorStore creates a new in-memory vector store.
func NewVectorStore() *VectorStore {
	return &VectorStore{}
}

// AddTexts stores texts with their metadata.
func (s *VectorStore) AddTexts(_ context.Context, texts []string, metadatas []domain.ChunkMetadata) error {
	if len(texts) != len(metadatas) {
		return fmt.Errorf("%w: %d texts but %d metadatas", domain.ErrInvalidInput, len(texts), len(metadatas))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, text := range texts {
		s.texts = append(s.texts, storedText{content: text, metadata: metadatas[i]})
	}
	return nil
}

// DeleteByPage removes every stored text belonging to the page.
func (s *VectorStore) DeleteByPage(_ context.Context, pageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.texts[:0]
	for _, t := range s.texts {
		if t.metadata.PageID != pageID {
			kept = append(kept, t)
		}
	}
	s.texts = kept
	return nil
}

// Search scores stored texts by how many query terms they contain and
// returns the top k matches.
func (s *VectorStore) Search(_ context.Context, query string, k int) ([]domain.SearchResult, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || k <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.SearchResult
	for _, t := range s.texts {
		content := strings.ToLower(t.content)
		matched := 0
		for _, term := range terms {
			if strings.Contains(content, term) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			Content:  t.content,
			Metadata: t.metadata,
			Score:    float64(matched) / float64(len(terms)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Close releases nothing; it exists to satisfy the interface.
func (s *VectorStore) Close() error { return nil }

// Len reports how many texts are stored.
func (s *VectorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.texts)
}

// PageTexts returns the stored contents for a page, in insertion order.
func (s *VectorStore) PageTexts(pageID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, t := range s.texts {
		if t.metadata.PageID == pageID {
			out = append(out, t.content)
		}
	}
	return out
}
