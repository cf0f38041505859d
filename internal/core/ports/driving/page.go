package driving

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// PageReader provides live access to a single page's rendered content.
type PageReader interface {
	// Read fetches the page from the workspace by id.
	Read(ctx context.Context, id string) (*domain.Page, error)
}
