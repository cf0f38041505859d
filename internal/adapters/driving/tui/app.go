// Package tui provides the interactive terminal search interface.
// It follows the Elm architecture via Bubbletea: a single model owns the
// query input and the result list, and search runs as a background command.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
	"github.com/SunnyChopper/notion-assistant/internal/core/ports/driving"
)

// App is the TUI application model. It implements tea.Model.
type App struct {
	search driving.SearchService
	ctx    context.Context
	styles *Styles

	input textinput.Model

	results  []domain.SearchResult
	selected int

	// focusInput toggles between typing (true) and result navigation (false).
	focusInput bool
	searching  bool
	searched   bool
	err        error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// searchCompleted carries the outcome of a search command.
type searchCompleted struct {
	results []domain.SearchResult
	err     error
}

// NewApp creates the TUI application. The caller is responsible for
// passing a non-nil search service.
func NewApp(search driving.SearchService) *App {
	ti := textinput.New()
	ti.Placeholder = "Enter search query..."
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return &App{
		search:     search,
		ctx:        context.Background(),
		styles:     DefaultStyles(),
		input:      ti,
		focusInput: true,
		width:      80,
		height:     24,
	}
}

// WithContext sets the context used for search calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("notion-assistant - Workspace Search"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		if w := msg.Width - 8; w >= 20 {
			a.input.Width = w
		}
		return a, nil

	case searchCompleted:
		a.handleSearchCompleted(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.focusInput {
		return a.handleInputKey(msg)
	}
	return a.handleResultsKey(msg)
}

// handleInputKey processes keys while the query input has focus.
func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(a.input.Value())
		if query == "" {
			return a, nil
		}
		a.searching = true
		a.err = nil
		a.focusInput = false // Move to results mode after search
		a.input.Blur()
		return a, a.performSearch(query)

	case tea.KeyEsc:
		// Esc clears a pending query first; a second Esc quits.
		if a.input.Value() != "" {
			a.input.SetValue("")
			return a, nil
		}
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleResultsKey processes keys while navigating results.
func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		// Back to the input, keeping the query for editing.
		a.focusInput = true
		a.input.Focus()
		return a, textinput.Blink
	}

	switch msg.String() {
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(a.results)-1 {
			a.selected++
		}
	case "n":
		// New search: clear input and focus it
		a.focusInput = true
		a.input.SetValue("")
		a.input.Focus()
		return a, textinput.Blink
	case "q":
		return a, tea.Quit
	}

	return a, nil
}

// performSearch executes a search and reports the outcome as a message.
func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.search.Search(a.ctx, query, domain.SearchOptions{})
		return searchCompleted{results: results, err: err}
	}
}

// handleSearchCompleted records search results on the model.
func (a *App) handleSearchCompleted(msg searchCompleted) {
	a.searching = false
	a.searched = true
	if msg.err != nil {
		a.err = msg.err
		a.results = nil
		a.selected = 0
		return
	}
	a.err = nil
	a.results = msg.results
	a.selected = 0
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := a.styles.Title.Render("Notion Assistant")
	sections = append(sections, header, "")

	sections = append(sections, a.styles.InputField.Render(a.input.View()), "")

	if a.err != nil {
		errView := a.styles.Error.Render("Error: " + a.err.Error())
		sections = append(sections, errView, "")
	}

	if a.searching {
		sections = append(sections, a.styles.Muted.Render("Searching..."))
	} else {
		sections = append(sections, a.renderResults())
	}

	sections = append(sections, "", a.helpView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderResults formats the result list with a selection indicator.
func (a *App) renderResults() string {
	if len(a.results) == 0 {
		if a.searched && a.err == nil {
			return a.styles.Muted.Render("No results found.")
		}
		return a.styles.Muted.Render("Type a query and press Enter to search.")
	}

	lines := make([]string, 0, len(a.results)*2+2)

	header := a.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(a.results)))
	lines = append(lines, header, "")

	for i := range a.results {
		lines = append(lines, a.renderResult(i, &a.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single result as a title line plus a preview line.
func (a *App) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == a.selected {
		indicator = "> "
	}

	title := result.Metadata.Title
	if title == "" {
		title = result.Metadata.PageID
	}

	score := fmt.Sprintf("%.2f", result.Score)

	var titleLine string
	if index == a.selected {
		titleLine = a.styles.Selected.Render(fmt.Sprintf("%s%s  %s", indicator, title, score))
	} else {
		titleLine = a.styles.Normal.Render(fmt.Sprintf("%s%s  ", indicator, title)) +
			a.styles.Muted.Render(score)
	}

	previewLine := a.styles.Muted.Render("    " + result.Preview(a.previewWidth()))

	return titleLine + "\n" + previewLine
}

// previewWidth bounds result previews to the terminal width.
func (a *App) previewWidth() int {
	w := a.width - 6
	if w < 20 {
		w = 20
	}
	if w > domain.PreviewLength {
		w = domain.PreviewLength
	}
	return w
}

// helpView renders keybinding hints for the current mode.
func (a *App) helpView() string {
	if a.focusInput {
		return a.styles.Help.Render("enter: search | esc: clear/quit | ctrl+c: quit")
	}
	return a.styles.Help.Render("↑/k ↓/j: navigate | n: new search | esc: edit query | q: quit")
}

// Query returns the current query text.
func (a *App) Query() string {
	return a.input.Value()
}

// SetQuery sets the query text.
func (a *App) SetQuery(query string) {
	a.input.SetValue(query)
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.results
}

// SelectedIndex returns the index of the selected result.
func (a *App) SelectedIndex() int {
	return a.selected
}

// Err returns the last search error, if any.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the first window size has been received.
func (a *App) Ready() bool {
	return a.ready
}

// InputFocused reports whether the query input has focus.
func (a *App) InputFocused() bool {
	return a.focusInput
}

// Searching reports whether a search is in flight.
func (a *App) Searching() bool {
	return a.searching
}
