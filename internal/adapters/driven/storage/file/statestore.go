package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.IndexStateStore = (*StateStore)(nil)

const (
	hashesFile    = "hashes.json"
	processedFile = "processed.json"
	graphFile     = "graph.json"
)

// StateStore is a file-based implementation of driven.IndexStateStore.
// Each section is one JSON blob; saves write a temp file and rename it
// over the target, so readers never observe a partial write and the
// worst crash outcome is an older blob.
type StateStore struct {
	mu  sync.RWMutex
	dir string
}

// NewStateStore creates a state store rooted at dataDir. If dataDir is
// empty, it defaults to ~/.notion-assistant.
func NewStateStore(dataDir string) (*StateStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".notion-assistant")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return &StateStore{dir: dataDir}, nil
}

// Dir returns the directory holding the state files.
func (s *StateStore) Dir() string {
	return s.dir
}

// LoadAll reads all three sections. A missing file yields that
// section's empty default; a file that exists but does not parse is a
// fatal domain.ErrStateCorrupt.
func (s *StateStore) LoadAll(_ context.Context) (*domain.IndexState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := domain.NewIndexState()

	if err := s.loadJSON(hashesFile, &state.Hashes); err != nil {
		return nil, err
	}
	if state.Hashes == nil {
		state.Hashes = make(domain.ContentHashes)
	}

	var processed []string
	if err := s.loadJSON(processedFile, &processed); err != nil {
		return nil, err
	}
	for _, id := range processed {
		state.Processed.Add(id)
	}

	if err := s.loadJSON(graphFile, state.Graph); err != nil {
		return nil, err
	}
	if state.Graph.Nodes == nil {
		state.Graph.Nodes = make(map[string]string)
	}
	if state.Graph.Edges == nil {
		state.Graph.Edges = make(map[string][]string)
	}

	return state, nil
}

// SaveHashes atomically replaces the content hash blob.
func (s *StateStore) SaveHashes(_ context.Context, hashes domain.ContentHashes) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveJSON(hashesFile, hashes)
}

// SaveProcessed atomically replaces the processed-set blob. The set is
// serialized as a sorted id list so saves are deterministic.
func (s *StateStore) SaveProcessed(_ context.Context, processed domain.ProcessedSet) error {
	ids := make([]string, 0, len(processed))
	for id := range processed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveJSON(processedFile, ids)
}

// SaveGraph atomically replaces the corpus graph blob.
func (s *StateStore) SaveGraph(_ context.Context, graph *domain.Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveJSON(graphFile, graph)
}

// loadJSON reads one blob into v (caller must hold the lock).
func (s *StateStore) loadJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w: %v", name, domain.ErrStateCorrupt, err)
	}
	return nil
}

// saveJSON writes one blob via temp file + rename (caller must hold
// the lock).
func (s *StateStore) saveJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
