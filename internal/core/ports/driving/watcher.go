package driving

import "context"

// Watcher re-runs the indexer on a fixed interval so the local index
// follows the remote workspace without a change feed.
type Watcher interface {
	// Start begins the watch loop. It runs one pass immediately, then
	// one per interval, and blocks until the context is cancelled.
	Start(ctx context.Context) error
}
