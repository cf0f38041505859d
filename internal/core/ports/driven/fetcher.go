package driven

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// PageFetcher retrieves one page from the remote workspace: its typed
// properties, its block content rendered to flat text, and the child
// pages declared inside it.
//
// Fetch performs network I/O only and mutates no local state. Any
// non-success response from the source surfaces as an error carrying
// the status and body; fetch errors are fatal to a traversal run.
type PageFetcher interface {
	// Fetch returns the page for the given id.
	Fetch(ctx context.Context, id string) (*domain.Page, error)
}
