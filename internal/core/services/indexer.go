package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SunnyChopper/notion-assistant/internal/chunker"
	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
	"github.com/SunnyChopper/notion-assistant/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.Indexer = (*Indexer)(nil)

// Indexer walks the workspace depth-first from a root page, deciding
// per page whether its content is unseen, modified or unchanged,
// (re-)embedding what changed, and maintaining the corpus graph.
//
// Traversal is strictly sequential: one page at a time, so the durable
// state has a single writer. Concurrency exists only inside one page's
// chunk submission step, bounded by the worker count.
type Indexer struct {
	fetcher     driven.PageFetcher
	stateStore  driven.IndexStateStore
	vectorStore driven.VectorStore
	splitter    *chunker.Chunker
	workers     int

	// Progress tracking. Counters are written only by the traversal
	// goroutine; the mutex makes snapshots safe for observers.
	mu       sync.RWMutex
	running  bool
	progress domain.Progress

	// Durable state, loaded once per instance on the first run.
	state *domain.IndexState

	// Per-run traversal bookkeeping.
	visited map[string]struct{}
	path    []string
}

// NewIndexer creates an indexer. A nil splitter gets default chunking;
// workers <= 0 gets the default fan-out bound.
func NewIndexer(
	fetcher driven.PageFetcher,
	stateStore driven.IndexStateStore,
	vectorStore driven.VectorStore,
	splitter *chunker.Chunker,
	workers int,
) *Indexer {
	if splitter == nil {
		splitter = chunker.New()
	}
	if workers <= 0 {
		workers = domain.DefaultEmbedWorkers
	}
	return &Indexer{
		fetcher:     fetcher,
		stateStore:  stateStore,
		vectorStore: vectorStore,
		splitter:    splitter,
		workers:     workers,
	}
}

// Run performs one full incremental pass from rootID and returns the
// corpus graph. Fetch and state-store failures are fatal; individual
// chunk failures are tallied and logged. The hash map and processed
// set are persisted after every page decision, so an interrupted run
// keeps all completed work.
func (s *Indexer) Run(ctx context.Context, rootID string) (*domain.Graph, error) {
	if rootID == "" {
		return nil, fmt.Errorf("%w: root page id is empty", domain.ErrInvalidInput)
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if s.state == nil {
		state, err := s.stateStore.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("load index state: %w", err)
		}
		s.state = state
	}

	s.visited = make(map[string]struct{})
	s.path = s.path[:0]

	logger.Info("Starting index run from %s", rootID)
	visitErr := s.visit(ctx, rootID, "")

	// The graph is flushed once per run, even after a fatal error, so
	// completed nodes keep their structure.
	if err := s.stateStore.SaveGraph(ctx, s.state.Graph); err != nil {
		if visitErr == nil {
			return nil, fmt.Errorf("save graph: %w", err)
		}
		logger.Warn("Failed to save graph after run error: %v", err)
	}

	if visitErr != nil {
		return nil, visitErr
	}

	p := s.Progress()
	logger.Info("Index run complete: %d visited, %d indexed, %d skipped, %d chunks (%d failed)",
		p.PagesVisited, p.PagesIndexed, p.PagesSkipped, p.ChunksSubmitted, p.ChunksFailed)
	return s.state.Graph, nil
}

// Progress returns a read-only snapshot of the current (or last) run.
func (s *Indexer) Progress() domain.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.progress
	p.Running = s.running
	return p
}

// visit handles one page: fetch, decide, index if needed, persist,
// update the graph, then recurse into unvisited children.
//
//nolint:gocognit // Traversal orchestration with necessary sequential steps
func (s *Indexer) visit(ctx context.Context, id, parentID string) error {
	// Cancellation is cooperative, checked between page visits.
	if err := ctx.Err(); err != nil {
		return err
	}

	s.visited[id] = struct{}{}
	s.path = append(s.path, id)
	defer func() { s.path = s.path[:len(s.path)-1] }()

	// 1. FETCH
	page, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch page %s (path %s): %w", id, strings.Join(s.path, " > "), err)
	}

	s.update(func(p *domain.Progress) {
		p.TotalDiscovered += len(page.ChildRefs)
	})

	// 2. DECIDE
	fingerprint := domain.Fingerprint(page.FullText)
	kind := s.state.Hashes.Decide(id, fingerprint)

	// 3. INDEX OR SKIP
	switch {
	case kind.NeedsIndexing():
		result := s.indexPage(ctx, page)
		s.update(func(p *domain.Progress) {
			p.ChunksSubmitted += result.ChunksSubmitted
			p.ChunksFailed += result.ChunksFailed
		})

		if result.ChunksSubmitted == 0 && result.ChunksFailed == 0 {
			// Empty content: a reported no-op, nothing to remember.
			logger.Warn("Page %s (%s) has no content, skipping", id, page.Title)
			s.update(func(p *domain.Progress) { p.PagesSkipped++ })
			break
		}

		// The fingerprint is recorded on submission even when some
		// chunks failed: partial re-embedding beats a permanent
		// re-skip, and the next content change still re-indexes.
		s.state.Hashes[id] = fingerprint
		if err := s.stateStore.SaveHashes(ctx, s.state.Hashes); err != nil {
			return fmt.Errorf("save hashes after page %s: %w", id, err)
		}
		s.state.Processed.Add(id)
		if err := s.stateStore.SaveProcessed(ctx, s.state.Processed); err != nil {
			return fmt.Errorf("save processed set after page %s: %w", id, err)
		}
		s.update(func(p *domain.Progress) { p.PagesIndexed++ })

	case s.state.Processed.Has(id):
		logger.Debug("Page %s unchanged, already processed", id)
		s.update(func(p *domain.Progress) { p.PagesSkipped++ })

	default:
		logger.Info("Page %s unchanged, skipping", id)
		s.update(func(p *domain.Progress) { p.PagesSkipped++ })
	}

	// 4. GRAPH (always, whatever the content decision)
	s.state.Graph.UpsertNode(id, page.Title)
	if parentID != "" {
		s.state.Graph.AddEdge(parentID, id)
	}
	s.update(func(p *domain.Progress) { p.PagesVisited++ })

	// 5. CHILDREN
	for _, ref := range page.ChildRefs {
		if _, seen := s.visited[ref.ID]; seen {
			// Already visited this run (duplicate reference or a
			// cycle): record the edge, skip the subtree.
			s.state.Graph.AddEdge(id, ref.ID)
			continue
		}
		if err := s.visit(ctx, ref.ID, id); err != nil {
			return err
		}
	}

	return nil
}

// indexPage runs the chunk-and-embed pipeline for one page: split,
// invalidate prior vectors, then submit every chunk through a bounded
// worker pool. Chunks succeed and fail independently; a failed chunk
// never blocks its siblings.
func (s *Indexer) indexPage(ctx context.Context, page *domain.Page) domain.IndexResult {
	chunks := s.splitter.Split(page.ID, page.FullText)
	if len(chunks) == 0 {
		return domain.IndexResult{}
	}

	logger.Info("Indexing page %s (%s): %d chunks", page.ID, page.Title, len(chunks))

	// Invalidate whatever the store holds for this page. The store may
	// not contain the id yet; that failure is tolerated and logged.
	if err := s.vectorStore.DeleteByPage(ctx, page.ID); err != nil {
		logger.Debug("Delete existing vectors for %s: %v", page.ID, err)
	}

	meta := domain.ChunkMetadata{PageID: page.ID, Title: page.Title}

	var (
		wg        sync.WaitGroup
		sem       = make(chan struct{}, s.workers)
		submitted atomic.Int64
		failed    atomic.Int64
	)

	for _, chunk := range chunks {
		wg.Add(1)
		sem <- struct{}{}
		go func(c domain.Chunk) {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.vectorStore.AddTexts(ctx, []string{c.Content}, []domain.ChunkMetadata{meta})
			if err != nil {
				failed.Add(1)
				logger.Warn("Embed chunk %d of page %s: %v", c.Position, page.ID, err)
				return
			}
			submitted.Add(1)
		}(chunk)
	}
	wg.Wait()

	return domain.IndexResult{
		ChunksSubmitted: int(submitted.Load()),
		ChunksFailed:    int(failed.Load()),
	}
}

// begin marks a run active, refusing concurrent runs on this instance.
func (s *Indexer) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return domain.ErrIndexInProgress
	}
	s.running = true
	s.progress = domain.Progress{StartedAt: time.Now()}
	return nil
}

// end marks the run finished.
func (s *Indexer) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// update mutates the progress snapshot under the lock.
func (s *Indexer) update(fn func(*domain.Progress)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.progress)
}
