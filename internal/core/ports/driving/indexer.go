package driving

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// Indexer runs incremental traversal passes over the workspace.
type Indexer interface {
	// Run performs one full depth-first pass from the root page and
	// returns the corpus graph after the run. Only one run may be in
	// flight per instance; a second concurrent call fails with
	// domain.ErrIndexInProgress. Cancellation is cooperative: the
	// context is checked between page visits, so an interrupted run
	// leaves persisted state consistent up to the last completed page.
	Run(ctx context.Context, rootID string) (*domain.Graph, error)

	// Progress returns a read-only snapshot of the current (or last)
	// run's counters. Safe to call from any goroutine.
	Progress() domain.Progress
}
