package memory

import (
	"context"
	"sync"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.IndexStateStore = (*StateStore)(nil)

// StateStore is an in-memory implementation of driven.IndexStateStore.
// Saves copy their input and loads return fresh copies, so callers
// observe the same isolation a file-backed store provides.
type StateStore struct {
	mu        sync.RWMutex
	hashes    domain.ContentHashes
	processed domain.ProcessedSet
	graph     *domain.Graph
}

// NewStateStore creates a new in-memory index state store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// LoadAll returns a copy of the persisted state, with empty defaults
// for anything never saved.
func (s *StateStore) LoadAll(_ context.Context) (*domain.IndexState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := domain.NewIndexState()
	for id, hash := range s.hashes {
		state.Hashes[id] = hash
	}
	for id := range s.processed {
		state.Processed.Add(id)
	}
	if s.graph != nil {
		for id, title := range s.graph.Nodes {
			state.Graph.UpsertNode(id, title)
		}
		for from, children := range s.graph.Edges {
			for _, to := range children {
				state.Graph.AddEdge(from, to)
			}
		}
	}
	return state, nil
}

// SaveHashes stores a copy of the content hash map.
func (s *StateStore) SaveHashes(_ context.Context, hashes domain.ContentHashes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hashes = make(domain.ContentHashes, len(hashes))
	for id, hash := range hashes {
		s.hashes[id] = hash
	}
	return nil
}

// SaveProcessed stores a copy of the processed set.
func (s *StateStore) SaveProcessed(_ context.Context, processed domain.ProcessedSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processed = make(domain.ProcessedSet, len(processed))
	for id := range processed {
		s.processed.Add(id)
	}
	return nil
}

// SaveGraph stores a copy of the corpus graph.
func (s *StateStore) SaveGraph(_ context.Context, graph *domain.Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := domain.NewGraph()
	for id, title := range graph.Nodes {
		copied.UpsertNode(id, title)
	}
	for from, children := range graph.Edges {
		for _, to := range children {
			copied.AddEdge(from, to)
		}
	}
	s.graph = copied
	return nil
}
