package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// blockPageSize is the page size for block children requests. Notion
// caps list responses at 100 results.
const blockPageSize = 100

// Client wraps the Notion API client with proactive rate limiting.
type Client struct {
	api     *notionapi.Client
	limiter *rate.Limiter
}

// NewClient creates a Notion API client from the given settings. Extra
// options are passed through to the underlying client; tests use this
// to install a custom HTTP client.
func NewClient(cfg domain.NotionSettings, opts ...notionapi.ClientOption) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: notion token is missing", domain.ErrNotConfigured)
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = domain.DefaultRequestsPerSecond
	}

	return &Client{
		api:     notionapi.NewClient(notionapi.Token(cfg.Token), opts...),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// GetPage retrieves a page's metadata and properties.
func (c *Client) GetPage(ctx context.Context, id string) (*notionapi.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	page, err := c.api.Page.Get(ctx, notionapi.PageID(id))
	if err != nil {
		return nil, wrapError(err, "get page")
	}
	return page, nil
}

// GetAllBlockChildren retrieves every content block of a page in source
// order, following pagination cursors until the API reports no more.
func (c *Client) GetAllBlockChildren(ctx context.Context, id string) ([]notionapi.Block, error) {
	var all []notionapi.Block
	cursor := notionapi.Cursor("")

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		resp, err := c.api.Block.GetChildren(ctx, notionapi.BlockID(id), &notionapi.Pagination{
			StartCursor: cursor,
			PageSize:    blockPageSize,
		})
		if err != nil {
			return nil, wrapError(err, "get block children")
		}

		all = append(all, resp.Results...)

		if !resp.HasMore {
			break
		}
		cursor = notionapi.Cursor(resp.NextCursor)
	}

	return all, nil
}
