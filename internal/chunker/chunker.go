// Package chunker splits page text into fixed-size overlapping windows.
package chunker

import (
	"github.com/google/uuid"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// Chunker cuts page text into overlapping chunks for embedding.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the window size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between windows in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: domain.DefaultChunkSize,
		overlap:   domain.DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Split cuts fullText into overlapping windows attributed to pageID.
// Empty text produces no chunks; callers treat that as a reported
// no-op, not an error.
func (c *Chunker) Split(pageID, fullText string) []domain.Chunk {
	if fullText == "" {
		return nil
	}

	contentLen := len(fullText)

	estimated := (contentLen / (c.chunkSize - c.overlap)) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	position := 0
	start := 0

	for start < contentLen {
		end := start + c.chunkSize
		if end > contentLen {
			end = contentLen
		}

		chunks = append(chunks, domain.Chunk{
			ID:       uuid.New().String(),
			PageID:   pageID,
			Content:  fullText[start:end],
			Position: position,
		})
		position++

		// Move start forward by (chunkSize - overlap)
		start += c.chunkSize - c.overlap

		if c.chunkSize <= c.overlap {
			break
		}
	}

	return chunks
}
