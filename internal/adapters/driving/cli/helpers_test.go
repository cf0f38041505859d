package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/SunnyChopper/notion-assistant/internal/adapters/driven/storage/memory"
	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/services"
)

// setupTestServices swaps the package-level services for memory-backed
// test doubles and returns a cleanup that restores the originals.
func setupTestServices() func() {
	oldSearch := searchService
	oldGraph := graphService
	oldPage := pageService
	oldIndexer := indexerService

	ctx := context.Background()

	vectors := memory.NewVectorStore()
	//nolint:errcheck // Seeding an in-memory store never fails
	vectors.AddTexts(ctx,
		[]string{
			"Quarterly planning notes covering goals and owners.",
			"Retrospective notes from the platform team meeting.",
		},
		[]domain.ChunkMetadata{
			{PageID: "page-1", Title: "Planning"},
			{PageID: "page-2", Title: "Retro"},
		})
	searchService = services.NewSearchService(vectors)

	states := memory.NewStateStore()
	graph := domain.NewGraph()
	graph.UpsertNode("root-1", "Home")
	graph.UpsertNode("page-1", "Planning")
	graph.UpsertNode("page-2", "Retro")
	graph.AddEdge("root-1", "page-1")
	graph.AddEdge("root-1", "page-2")
	//nolint:errcheck // Seeding an in-memory store never fails
	states.SaveGraph(ctx, graph)
	graphService = services.NewGraphService(states, "root-1")

	pageService = services.NewPageService(&stubPageFetcher{})
	indexerService = &stubIndexer{}

	return func() {
		searchService = oldSearch
		graphService = oldGraph
		pageService = oldPage
		indexerService = oldIndexer
	}
}

// stubPageFetcher returns a fixed page for any id.
type stubPageFetcher struct{}

func (f *stubPageFetcher) Fetch(_ context.Context, id string) (*domain.Page, error) {
	return &domain.Page{
		ID:    id,
		Title: "Planning",
		Properties: map[string]domain.PropertyValue{
			"Status": {Kind: domain.PropertySelect, Text: "Active"},
		},
		FullText: "# Planning\nGoals for the quarter.",
	}, nil
}

// stubIndexer completes immediately with a two-page graph.
type stubIndexer struct{}

func (i *stubIndexer) Run(_ context.Context, rootID string) (*domain.Graph, error) {
	graph := domain.NewGraph()
	graph.UpsertNode(rootID, "Home")
	graph.UpsertNode("page-1", "Planning")
	graph.AddEdge(rootID, "page-1")
	return graph, nil
}

func (i *stubIndexer) Progress() domain.Progress {
	return domain.Progress{
		TotalDiscovered: 2,
		PagesVisited:    2,
		PagesIndexed:    1,
		PagesSkipped:    1,
		ChunksSubmitted: 3,
	}
}

// Error doubles.

var errService = errors.New("service exploded")

type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	return nil, errService
}

type mockIndexerError struct{}

func (m *mockIndexerError) Run(_ context.Context, _ string) (*domain.Graph, error) {
	return nil, fmt.Errorf("get page: %w", errService)
}

func (m *mockIndexerError) Progress() domain.Progress {
	return domain.Progress{}
}

type mockGraphReaderError struct{}

func (m *mockGraphReaderError) Summary(_ context.Context) (*domain.GraphSummary, error) {
	return nil, errService
}

func (m *mockGraphReaderError) Children(_ context.Context, _ string) ([]domain.PageRef, error) {
	return nil, errService
}

type mockPageReaderError struct{}

func (m *mockPageReaderError) Read(_ context.Context, _ string) (*domain.Page, error) {
	return nil, errService
}
