package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required setting (token, API key,
	// root page) has not been provided.
	ErrNotConfigured = errors.New("not configured")

	// ErrIndexInProgress indicates a traversal run is already active
	// on this indexer instance. Concurrent runs against the same state
	// paths are out of contract.
	ErrIndexInProgress = errors.New("index run in progress")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Indexing and semantic search are disabled without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStateCorrupt indicates a persisted state blob exists but could
	// not be decoded. Fatal on load: silently starting from empty state
	// would cause wrong skip decisions and mass re-embedding.
	ErrStateCorrupt = errors.New("state store corrupt")
)
