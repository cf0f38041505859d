package driven

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// IndexStateStore persists the three sections of the durable indexer
// state, each as a single blob at a configurable path.
//
// LoadAll treats a missing blob as that section's empty default; a blob
// that exists but cannot be decoded is a fatal error (wrapping
// domain.ErrStateCorrupt). Each save atomically overwrites its blob;
// last successful save wins. The traversal driver is the single
// writer.
type IndexStateStore interface {
	// LoadAll reads all three sections, substituting empty defaults
	// for missing blobs.
	LoadAll(ctx context.Context) (*domain.IndexState, error)

	// SaveHashes persists the content-fingerprint map.
	SaveHashes(ctx context.Context, hashes domain.ContentHashes) error

	// SaveProcessed persists the visited-page set.
	SaveProcessed(ctx context.Context, processed domain.ProcessedSet) error

	// SaveGraph persists the corpus graph.
	SaveGraph(ctx context.Context, graph *domain.Graph) error
}
