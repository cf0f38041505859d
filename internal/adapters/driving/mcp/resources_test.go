package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

func TestExtractPageID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid page URI",
			uri:      "notion://page/page-123",
			expected: "page-123",
		},
		{
			name:     "invalid scheme",
			uri:      "file://page/page-123",
			expected: "",
		},
		{
			name:     "missing page segment",
			uri:      "notion://pages/page-123",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractPageID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestServer_handlePageResource(t *testing.T) {
	ctx := context.Background()

	readRequest := func(uri string) *mcp.ReadResourceRequest {
		return &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uri},
		}
	}

	t.Run("returns rendered page text", func(t *testing.T) {
		mockPage := &mockPageReader{
			page: &domain.Page{
				ID:       "page-1",
				Title:    "Planning",
				FullText: "Goals for the quarter.",
			},
		}

		ports := &Ports{Search: &mockSearchService{}, Page: mockPage}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handlePageResource(ctx, readRequest("notion://page/page-1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "notion://page/page-1", result.Contents[0].URI)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
		assert.Equal(t, "# Planning\n\nGoals for the quarter.", result.Contents[0].Text)
	})

	t.Run("empty page renders title only", func(t *testing.T) {
		mockPage := &mockPageReader{
			page: &domain.Page{ID: "page-1", Title: "Empty"},
		}

		ports := &Ports{Search: &mockSearchService{}, Page: mockPage}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handlePageResource(ctx, readRequest("notion://page/page-1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "# Empty", result.Contents[0].Text)
	})

	t.Run("not found without page reader", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handlePageResource(ctx, readRequest("notion://page/page-1"))

		assert.Error(t, err)
	})

	t.Run("not found for malformed URI", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Page: &mockPageReader{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handlePageResource(ctx, readRequest("notion://other/page-1"))

		assert.Error(t, err)
	})

	t.Run("propagates read errors", func(t *testing.T) {
		mockPage := &mockPageReader{err: errors.New("fetch exploded")}
		ports := &Ports{Search: &mockSearchService{}, Page: mockPage}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handlePageResource(ctx, readRequest("notion://page/page-1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading page")
	})
}
