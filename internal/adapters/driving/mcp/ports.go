package mcp

import (
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides similarity search over indexed chunks.
	Search driving.SearchService

	// Page reads single pages live from the workspace.
	Page driving.PageReader

	// Graph exposes the indexed page graph.
	Graph driving.GraphReader

	// Indexer triggers traversal runs.
	Indexer driving.Indexer

	// DefaultRoot is the configured root page id, used when an index
	// request does not name one.
	DefaultRoot string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Page, Graph and Indexer are optional; their tools report
	// not-configured when absent.
	return nil
}
