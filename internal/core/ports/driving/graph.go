package driving

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// GraphReader exposes the persisted corpus graph to external actors.
type GraphReader interface {
	// Summary returns an overview of the graph anchored at the
	// configured root page.
	Summary(ctx context.Context) (*domain.GraphSummary, error)

	// Children returns the direct children of a page, first-observed
	// order. Fails with domain.ErrNotFound for unknown pages.
	Children(ctx context.Context, id string) ([]domain.PageRef, error)
}
