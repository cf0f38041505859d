package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// SearchInput is the input schema for the notion_search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find page content"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the notion_search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	PageID  string  `json:"page_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Content string  `json:"content,omitempty"`
}

// PageInput is the input schema for the notion_page tool.
type PageInput struct {
	PageID string `json:"page_id" jsonschema:"the id of the page to read"`
}

// PageOutput is the output schema for the notion_page tool.
type PageOutput struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Properties map[string]string `json:"properties,omitempty"`
	Content    string            `json:"content,omitempty"`
	Children   []PageRefOutput   `json:"children,omitempty"`
}

// PageRefOutput identifies a child page.
type PageRefOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// GraphInput is the input schema for the notion_graph tool.
type GraphInput struct {
	PageID string `json:"page_id,omitempty" jsonschema:"page to list children for; omit for a whole-graph summary"`
}

// GraphOutput is the output schema for the notion_graph tool.
type GraphOutput struct {
	TotalPages       int             `json:"total_pages,omitempty"`
	TotalConnections int             `json:"total_connections,omitempty"`
	RootID           string          `json:"root_id,omitempty"`
	RootTitle        string          `json:"root_title,omitempty"`
	Children         []PageRefOutput `json:"children"`
}

// IndexInput is the input schema for the notion_index tool.
type IndexInput struct {
	RootPageID string `json:"root_page_id,omitempty" jsonschema:"page to index from; omit to use the configured root"`
}

// IndexOutput is the output schema for the notion_index tool.
type IndexOutput struct {
	PagesVisited    int `json:"pages_visited"`
	PagesIndexed    int `json:"pages_indexed"`
	PagesSkipped    int `json:"pages_skipped"`
	ChunksSubmitted int `json:"chunks_submitted"`
	ChunksFailed    int `json:"chunks_failed"`
	TotalPages      int `json:"total_pages"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "notion_search",
		Description: "Search the indexed Notion workspace by meaning",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "notion_page",
		Description: "Read a single Notion page: title, properties and content",
	}, s.handlePage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "notion_graph",
		Description: "Inspect the indexed page hierarchy",
	}, s.handleGraph)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "notion_index",
		Description: "Run an incremental index pass over the workspace",
	}, s.handleIndex)
}

// handleSearch handles the notion_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	opts := domain.SearchOptions{Limit: limit}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			PageID:  results[i].Metadata.PageID,
			Title:   results[i].Metadata.Title,
			Score:   results[i].Score,
			Content: results[i].Content,
		}
	}

	return nil, output, nil
}

// handlePage handles the notion_page tool invocation.
func (s *Server) handlePage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, PageOutput, error) {
	if s.ports.Page == nil {
		return nil, PageOutput{}, fmt.Errorf("%w: notion token is missing", ErrNotConfigured)
	}

	page, err := s.ports.Page.Read(ctx, input.PageID)
	if err != nil {
		return nil, PageOutput{}, err
	}

	output := PageOutput{
		ID:      page.ID,
		Title:   page.Title,
		Content: page.FullText,
	}
	if len(page.Properties) > 0 {
		output.Properties = make(map[string]string, len(page.Properties))
		for name, value := range page.Properties {
			output.Properties[name] = value.String()
		}
	}
	for _, ref := range page.ChildRefs {
		output.Children = append(output.Children, PageRefOutput{ID: ref.ID, Title: ref.Title})
	}

	return nil, output, nil
}

// handleGraph handles the notion_graph tool invocation. With a page id
// it lists that page's children; without one it summarises the graph.
func (s *Server) handleGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GraphInput,
) (*mcp.CallToolResult, GraphOutput, error) {
	if s.ports.Graph == nil {
		return nil, GraphOutput{}, fmt.Errorf("%w: graph reader is missing", ErrNotConfigured)
	}

	if input.PageID != "" {
		children, err := s.ports.Graph.Children(ctx, input.PageID)
		if err != nil {
			return nil, GraphOutput{}, err
		}
		return nil, GraphOutput{Children: toRefOutputs(children)}, nil
	}

	summary, err := s.ports.Graph.Summary(ctx)
	if err != nil {
		return nil, GraphOutput{}, err
	}

	output := GraphOutput{
		TotalPages:       summary.TotalPages,
		TotalConnections: summary.TotalConnections,
		RootID:           summary.RootID,
		RootTitle:        summary.RootTitle,
		Children:         toRefOutputs(summary.RootChildren),
	}

	return nil, output, nil
}

// handleIndex handles the notion_index tool invocation. The run is
// synchronous; the tool returns once the pass completes.
func (s *Server) handleIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexInput,
) (*mcp.CallToolResult, IndexOutput, error) {
	if s.ports.Indexer == nil {
		return nil, IndexOutput{}, fmt.Errorf("%w: indexer is missing", ErrNotConfigured)
	}

	rootID := input.RootPageID
	if rootID == "" {
		rootID = s.ports.DefaultRoot
	}
	if rootID == "" {
		return nil, IndexOutput{}, fmt.Errorf("%w: no root page id given or configured", domain.ErrInvalidInput)
	}

	graph, err := s.ports.Indexer.Run(ctx, rootID)
	if err != nil {
		return nil, IndexOutput{}, err
	}

	progress := s.ports.Indexer.Progress()
	output := IndexOutput{
		PagesVisited:    progress.PagesVisited,
		PagesIndexed:    progress.PagesIndexed,
		PagesSkipped:    progress.PagesSkipped,
		ChunksSubmitted: progress.ChunksSubmitted,
		ChunksFailed:    progress.ChunksFailed,
		TotalPages:      graph.NodeCount(),
	}

	return nil, output, nil
}

func toRefOutputs(refs []domain.PageRef) []PageRefOutput {
	out := make([]PageRefOutput, len(refs))
	for i, ref := range refs {
		out[i] = PageRefOutput{ID: ref.ID, Title: ref.Title}
	}
	return out
}
