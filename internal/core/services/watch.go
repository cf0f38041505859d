package services

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
	"github.com/SunnyChopper/notion-assistant/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driving.Watcher = (*Watcher)(nil)

// Watcher re-runs the indexer on a fixed interval so the vector store
// follows upstream edits without manual runs.
type Watcher struct {
	indexer  driving.Indexer
	rootID   string
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// NewWatcher creates a watcher that passes over rootID every interval.
func NewWatcher(indexer driving.Indexer, rootID string, interval time.Duration) *Watcher {
	return &Watcher{
		indexer:  indexer,
		rootID:   rootID,
		interval: interval,
	}
}

// Start runs one pass immediately, then one per interval. It blocks
// until the context is cancelled or Stop is called. Pass failures are
// logged and the loop keeps going; only cancellation ends it.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.pass(ctx)

	timer := time.NewTimer(w.nextDelay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-timer.C:
			w.pass(ctx)
			timer.Reset(w.nextDelay())
		}
	}
}

// Stop ends the watch loop after the current pass.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
}

// pass runs one indexing pass and logs the outcome.
func (w *Watcher) pass(ctx context.Context) {
	logger.Info("Watch: starting pass over %s", w.rootID)
	if _, err := w.indexer.Run(ctx, w.rootID); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Warn("Watch: pass failed: %v", err)
		return
	}
	p := w.indexer.Progress()
	logger.Info("Watch: pass complete, %d visited, %d indexed", p.PagesVisited, p.PagesIndexed)
}

// nextDelay spreads passes with up to 10% jitter so repeated runs do
// not land on exact interval boundaries.
func (w *Watcher) nextDelay() time.Duration {
	jitter := w.interval / 10
	if jitter <= 0 {
		return w.interval
	}
	return w.interval + rand.N(jitter)
}
