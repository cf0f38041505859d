package domain

import "time"

// Progress is a read-only snapshot of a traversal run. The counters
// are owned by the traversal driver and updated only on its thread;
// observers receive copies, never shared mutable state.
type Progress struct {
	// Running indicates a run is currently in flight.
	Running bool

	// StartedAt is when the current (or last) run began.
	StartedAt time.Time

	// TotalDiscovered counts child references seen so far, for
	// progress display only.
	TotalDiscovered int

	// PagesVisited counts pages the driver has finished visiting.
	PagesVisited int

	// PagesIndexed counts pages whose content was (re-)embedded.
	PagesIndexed int

	// PagesSkipped counts pages left alone because their content was
	// unchanged or empty.
	PagesSkipped int

	// ChunksSubmitted counts chunks accepted by the embedding store.
	ChunksSubmitted int

	// ChunksFailed counts chunks the store rejected. Failures are
	// recoverable and never abort a run.
	ChunksFailed int
}

// IndexResult is the outcome of one page's chunk-and-embed pipeline.
type IndexResult struct {
	// ChunksSubmitted is the number of chunks stored successfully.
	ChunksSubmitted int

	// ChunksFailed is the number of chunks that failed to store.
	ChunksFailed int
}
