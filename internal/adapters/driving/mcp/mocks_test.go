package mcp

import (
	"context"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	gotOpts domain.SearchOptions
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.gotOpts = opts
	return m.results, m.err
}

// mockPageReader is a mock implementation of driving.PageReader.
type mockPageReader struct {
	page *domain.Page
	err  error
}

func (m *mockPageReader) Read(_ context.Context, _ string) (*domain.Page, error) {
	return m.page, m.err
}

// mockGraphReader is a mock implementation of driving.GraphReader.
type mockGraphReader struct {
	summary  *domain.GraphSummary
	children []domain.PageRef
	err      error
}

func (m *mockGraphReader) Summary(_ context.Context) (*domain.GraphSummary, error) {
	return m.summary, m.err
}

func (m *mockGraphReader) Children(_ context.Context, _ string) ([]domain.PageRef, error) {
	return m.children, m.err
}

// mockIndexer is a mock implementation of driving.Indexer.
type mockIndexer struct {
	graph    *domain.Graph
	progress domain.Progress
	gotRoot  string
	err      error
}

func (m *mockIndexer) Run(_ context.Context, rootID string) (*domain.Graph, error) {
	m.gotRoot = rootID
	return m.graph, m.err
}

func (m *mockIndexer) Progress() domain.Progress {
	return m.progress
}
