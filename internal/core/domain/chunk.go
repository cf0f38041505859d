package domain

// Chunk is a bounded, overlapping window of a page's text. Chunks are
// the unit submitted to the embedding store; they are derived data and
// are never persisted outside the store itself.
type Chunk struct {
	// ID is the unique identifier minted for this chunk.
	ID string

	// PageID links back to the page the chunk was cut from.
	PageID string

	// Content is the window's text.
	Content string

	// Position is the ordinal position within the page.
	Position int
}

// ChunkMetadata tags a stored vector with its page of origin. It is
// the metadata shape the embedding store persists alongside each text.
type ChunkMetadata struct {
	// PageID is the owning page's identifier.
	PageID string `json:"page_id"`

	// Title is the owning page's title at submission time.
	Title string `json:"title"`
}
