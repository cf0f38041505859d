package notion

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves pages from a Notion workspace and normalizes them
// into domain pages. It performs network I/O only; the traversal owns
// all local state.
type Fetcher struct {
	client *Client
}

// NewFetcher creates a page fetcher over the given client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch returns the page for the given id: typed properties, the block
// content rendered to flat text, and the child pages declared inside
// it. The id is kept as given so callers key state consistently.
func (f *Fetcher) Fetch(ctx context.Context, id string) (*domain.Page, error) {
	page, err := f.client.GetPage(ctx, id)
	if err != nil {
		return nil, err
	}

	blocks, err := f.client.GetAllBlockChildren(ctx, id)
	if err != nil {
		return nil, err
	}

	properties := parseProperties(page.Properties)
	fullText, childRefs := renderBlocks(blocks)

	return &domain.Page{
		ID:         id,
		Title:      domain.TitleFromProperties(properties),
		Properties: properties,
		FullText:   fullText,
		ChildRefs:  childRefs,
	}, nil
}
