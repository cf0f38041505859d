package domain

// PreviewLength is the number of characters of chunk text shown in
// search result previews.
const PreviewLength = 200

// DefaultSearchLimit is the number of results returned when the caller
// does not ask for a specific count.
const DefaultSearchLimit = 5

// SearchOptions configures a similarity search.
type SearchOptions struct {
	// Limit is the maximum number of results.
	Limit int
}

// SearchResult represents a single similarity hit from the embedding
// store.
type SearchResult struct {
	// Content is the full text of the matched chunk.
	Content string

	// Metadata identifies the page the chunk came from.
	Metadata ChunkMetadata

	// Score is the similarity score, higher is closer.
	Score float64
}

// Preview returns the chunk text truncated to max characters, with an
// ellipsis when truncated. Truncation is rune-safe.
func (r SearchResult) Preview(max int) string {
	if max <= 0 {
		return r.Content
	}
	runes := []rune(r.Content)
	if len(runes) <= max {
		return r.Content
	}
	return string(runes[:max]) + "..."
}
