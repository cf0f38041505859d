package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

func (m *MockSearchService) Search(
	ctx context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return []domain.SearchResult{}, nil
}

// Helper function to create test search results.
func testSearchResults() []domain.SearchResult {
	return []domain.SearchResult{
		{
			Content:  "Quarterly planning notes covering goals and owners.",
			Metadata: domain.ChunkMetadata{PageID: "page-1", Title: "Planning"},
			Score:    0.95,
		},
		{
			Content:  "Retrospective notes from the platform team meeting.",
			Metadata: domain.ChunkMetadata{PageID: "page-2", Title: "Retro"},
			Score:    0.85,
		},
	}
}

func sizedApp() *App {
	app := NewApp(&MockSearchService{})
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func TestNewApp(t *testing.T) {
	app := NewApp(&MockSearchService{})

	require.NotNil(t, app)
	assert.False(t, app.Ready())
	assert.Equal(t, "", app.Query())
	assert.True(t, app.InputFocused())
	assert.False(t, app.Searching())
	assert.Empty(t, app.Results())
}

func TestApp_WithContext(t *testing.T) {
	app := NewApp(&MockSearchService{})
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app := NewApp(&MockSearchService{})

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := NewApp(&MockSearchService{})

	updated, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, app, updated)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.width)
	assert.Equal(t, 40, app.height)
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	app := sizedApp()

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_KeyEnter_WithQuery(t *testing.T) {
	searchCalled := false
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
			searchCalled = true
			assert.Equal(t, "test", query)
			return testSearchResults(), nil
		},
	}
	app := NewApp(mock)
	app.SetQuery("test")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, app.Searching())
	assert.False(t, app.InputFocused())

	result := cmd()
	assert.IsType(t, searchCompleted{}, result)
	assert.True(t, searchCalled)
}

func TestApp_Update_KeyEnter_TrimsQuery(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
			assert.Equal(t, "meeting notes", query)
			return nil, nil
		},
	}
	app := NewApp(mock)
	app.SetQuery("  meeting notes  ")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	cmd()
}

func TestApp_Update_KeyEnter_EmptyQuery(t *testing.T) {
	app := NewApp(&MockSearchService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, app.InputFocused())
}

func TestApp_Update_SearchCompleted(t *testing.T) {
	app := sizedApp()
	app.searching = true
	app.focusInput = false

	updated, cmd := app.Update(searchCompleted{results: testSearchResults()})

	assert.Equal(t, app, updated)
	assert.Nil(t, cmd)
	assert.Len(t, app.Results(), 2)
	assert.Equal(t, 0, app.SelectedIndex())
	assert.False(t, app.Searching())
	assert.NoError(t, app.Err())
}

func TestApp_Update_SearchCompleted_WithError(t *testing.T) {
	app := sizedApp()
	app.searching = true
	app.results = testSearchResults()

	app.Update(searchCompleted{err: errors.New("search failed")})

	assert.Error(t, app.Err())
	assert.Empty(t, app.Results())
	assert.False(t, app.Searching())
}

func TestApp_Update_KeyEsc_ClearsQueryFirst(t *testing.T) {
	app := NewApp(&MockSearchService{})
	app.SetQuery("pending")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, "", app.Query())
}

func TestApp_Update_KeyEsc_EmptyQueryQuits(t *testing.T) {
	app := NewApp(&MockSearchService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_KeyEsc_InResultsMode_ReturnsToInput(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: testSearchResults()})
	app.focusInput = false
	app.SetQuery("old query")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, app.InputFocused())
	assert.Equal(t, "old query", app.Query())
}

func TestApp_Update_KeyN_NewSearch(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: testSearchResults()})
	app.focusInput = false
	app.SetQuery("old query")

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, app.InputFocused())
	assert.Equal(t, "", app.Query())
}

func TestApp_Update_KeyQ_InResultsMode_Quits(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: testSearchResults()})
	app.focusInput = false

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_Navigation(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: testSearchResults()})
	app.focusInput = false

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, app.SelectedIndex())

	// Bottom of the list, stays put
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, app.SelectedIndex())

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, app.SelectedIndex())

	// Top of the list, stays put
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, app.SelectedIndex())
}

func TestApp_Update_ArrowNavigation(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: testSearchResults()})
	app.focusInput = false

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.SelectedIndex())

	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, app.SelectedIndex())
}

func TestApp_Update_CharacterInput(t *testing.T) {
	app := NewApp(&MockSearchService{})

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, "a", app.Query())
}

func TestApp_View_NotReady(t *testing.T) {
	app := NewApp(&MockSearchService{})

	output := app.View()

	assert.Contains(t, output, "Initialising")
}

func TestApp_View_Ready(t *testing.T) {
	app := sizedApp()

	output := app.View()

	assert.Contains(t, output, "Notion Assistant")
	assert.Contains(t, output, "Enter search query")
	assert.Contains(t, output, "Type a query and press Enter to search.")
}

func TestApp_View_Searching(t *testing.T) {
	app := sizedApp()
	app.searching = true

	output := app.View()

	assert.Contains(t, output, "Searching...")
}

func TestApp_View_WithError(t *testing.T) {
	app := sizedApp()
	app.searched = true
	app.err = errors.New("test error")

	output := app.View()

	assert.Contains(t, output, "Error")
	assert.Contains(t, output, "test error")
}

func TestApp_View_WithResults(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: testSearchResults()})

	output := app.View()

	assert.Contains(t, output, "Results (2)")
	assert.Contains(t, output, "Planning")
	assert.Contains(t, output, "0.95")
	assert.Contains(t, output, "Retro")
	assert.Contains(t, output, ">") // Selection indicator
}

func TestApp_View_NoResults(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: nil})

	output := app.View()

	assert.Contains(t, output, "No results found.")
}

func TestApp_View_UntitledResultFallsBackToPageID(t *testing.T) {
	app := sizedApp()
	app.Update(searchCompleted{results: []domain.SearchResult{
		{Content: "orphan text", Metadata: domain.ChunkMetadata{PageID: "page-9"}, Score: 0.5},
	}})

	output := app.View()

	assert.Contains(t, output, "page-9")
}

func TestApp_PreviewWidth(t *testing.T) {
	app := NewApp(&MockSearchService{})

	app.width = 10
	assert.Equal(t, 20, app.previewWidth())

	app.width = 80
	assert.Equal(t, 74, app.previewWidth())

	app.width = 500
	assert.Equal(t, domain.PreviewLength, app.previewWidth())
}
