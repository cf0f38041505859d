// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants like Claude search and read the locally indexed
// Notion workspace.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrNotConfigured is returned by tool handlers whose backing service
// was not wired, usually because a token or API key is missing.
var ErrNotConfigured = errors.New("mcp: service not configured")
