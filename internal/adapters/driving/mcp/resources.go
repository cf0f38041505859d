package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for workspace resources.
const uriScheme = "notion://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for page content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "page/{id}",
		Name:        "page-content",
		Description: "Rendered content of a specific Notion page",
		MIMEType:    "text/markdown",
	}, s.handlePageResource)
}

// handlePageResource returns the rendered content of a page.
func (s *Server) handlePageResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Page == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract the page id from a URI like notion://page/{id}
	pageID := extractPageID(req.Params.URI)
	if pageID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	page, err := s.ports.Page.Read(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	text := "# " + page.Title
	if page.FullText != "" {
		text += "\n\n" + page.FullText
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     text,
		}},
	}, nil
}

// extractPageID extracts the page id from a URI like notion://page/{id}.
func extractPageID(uri string) string {
	const prefix = uriScheme + "page/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
