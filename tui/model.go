package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/takaishi/snip/editor"
	"github.com/takaishi/snip/report"
	"github.com/takaishi/snip/search"
)

const visibleResults = 5

// Model represents the application state
type Model struct {
	query search.Query

	// Search state
	searcher      *search.Searcher
	searchCancel  context.CancelFunc
	searchResults []*search.SearchResult
	selectedIndex int
	resultsOffset int // Scroll offset for results list
	isSearching   bool
	searchError   error

	// Preview state
	printer      *report.Printer
	preview      string
	previewError error

	editor    editor.Editor
	openError error

	// UI dimensions
	width  int
	height int
}

// New creates a Model that searches for q and renders previews with printer
func New(q search.Query, printer *report.Printer, ed editor.Editor) *Model {
	return &Model{
		query:         q,
		searcher:      search.NewSearcher(),
		printer:       printer,
		editor:        ed,
		selectedIndex: -1,
	}
}

// Run starts the interactive program and blocks until it exits
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init starts the search
func (m *Model) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.searchCancel = cancel
	m.isSearching = true

	searcher, q := m.searcher, m.query
	return func() tea.Msg {
		return <-searcher.Search(ctx, q)
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case search.SearchResultMsg:
		return m.handleSearchResult(msg)

	case previewLoadedMsg:
		return m.handlePreviewLoaded(msg)

	case editorOpenedMsg:
		m.openError = msg.Error
		return m, nil

	default:
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	return renderView(m)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		if m.searchCancel != nil {
			m.searchCancel()
		}
		return m, tea.Quit

	case "up", "k", "ctrl+p":
		return m.moveSelection(-1)

	case "down", "j", "ctrl+n":
		return m.moveSelection(1)

	case "enter":
		if m.selectedIndex < 0 || m.selectedIndex >= len(m.searchResults) {
			return m, nil
		}
		r := m.searchResults[m.selectedIndex]
		file := m.printer.Path(r)
		ed := m.editor
		return m, func() tea.Msg {
			return editorOpenedMsg{Error: editor.OpenFile(ed, file, r.Line, r.Column)}
		}
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	if len(m.searchResults) == 0 {
		return m, nil
	}
	next := min(max(m.selectedIndex+delta, 0), len(m.searchResults)-1)
	if next == m.selectedIndex {
		return m, nil
	}
	m.selectedIndex = next
	m.adjustScroll()
	return m, m.loadPreview()
}

// handleSearchResult processes search results
func (m *Model) handleSearchResult(msg search.SearchResultMsg) (tea.Model, tea.Cmd) {
	m.isSearching = false
	m.searchCancel = nil

	if msg.Error != nil {
		m.searchError = msg.Error
		m.searchResults = nil
		return m, nil
	}

	m.searchResults = msg.Results
	m.searchError = nil

	// Auto-select first result if available
	if len(m.searchResults) > 0 && m.selectedIndex < 0 {
		m.selectedIndex = 0
		m.resultsOffset = 0
		return m, m.loadPreview()
	}

	return m, nil
}

// adjustScroll adjusts the scroll offset to keep selected item visible
func (m *Model) adjustScroll() {
	if len(m.searchResults) <= visibleResults {
		m.resultsOffset = 0
		return
	}
	if m.selectedIndex < m.resultsOffset {
		m.resultsOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.resultsOffset+visibleResults {
		m.resultsOffset = m.selectedIndex - visibleResults + 1
	}
	m.resultsOffset = min(max(m.resultsOffset, 0), len(m.searchResults)-visibleResults)
}

// loadPreview renders the snippet for the currently selected result
func (m *Model) loadPreview() tea.Cmd {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.searchResults) {
		return nil
	}

	index := m.selectedIndex
	result := m.searchResults[index]
	printer, payload := m.printer, m.query.Pattern
	return func() tea.Msg {
		text, ok, err := printer.Render(result, payload)
		if err == nil && !ok {
			text = "(allowlisted)"
		}
		return previewLoadedMsg{Index: index, Text: text, Error: err}
	}
}

// previewLoadedMsg is sent when preview is loaded
type previewLoadedMsg struct {
	Index int
	Text  string
	Error error
}

// editorOpenedMsg is sent after the editor was started
type editorOpenedMsg struct {
	Error error
}

// handlePreviewLoaded processes loaded preview
func (m *Model) handlePreviewLoaded(msg previewLoadedMsg) (tea.Model, tea.Cmd) {
	// Selection moved on while loading
	if msg.Index != m.selectedIndex {
		return m, nil
	}
	if msg.Error != nil {
		m.previewError = msg.Error
		m.preview = ""
	} else {
		m.preview = msg.Text
		m.previewError = nil
	}
	return m, nil
}
