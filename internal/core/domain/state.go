package domain

// ContentHashes maps page id to the content fingerprint that was last
// submitted for embedding. An id present in the map has been embedded
// at least once with exactly that content.
type ContentHashes map[string]string

// Decide classifies a fresh fingerprint against the stored one.
func (h ContentHashes) Decide(id, fingerprint string) ChangeKind {
	stored, ok := h[id]
	if !ok {
		return ChangeUnseen
	}
	if stored != fingerprint {
		return ChangeModified
	}
	return ChangeUnchanged
}

// ProcessedSet records page ids visited by the current or a prior run.
// Membership implies the page's children have been, or will be,
// recursively visited; it gates skip-logging verbosity only and never
// the change decision itself.
type ProcessedSet map[string]struct{}

// Add inserts the id into the set.
func (s ProcessedSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether the id was already visited by some run.
func (s ProcessedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IndexState is the durable indexer state: three named sections, each
// independently persisted as its own blob. Hashes and Processed are
// flushed after every node decision, Graph at the end of a run.
type IndexState struct {
	// Hashes is the content-fingerprint map.
	Hashes ContentHashes

	// Processed is the visited-page set.
	Processed ProcessedSet

	// Graph is the corpus graph built across runs.
	Graph *Graph
}

// NewIndexState returns a state with empty sections, the default when
// nothing has been persisted yet.
func NewIndexState() *IndexState {
	return &IndexState{
		Hashes:    make(ContentHashes),
		Processed: make(ProcessedSet),
		Graph:     NewGraph(),
	}
}
