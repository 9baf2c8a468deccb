package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/takaishi/snip/search"
)

var (
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	queryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedResultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25"))

	previewHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Bold(true)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// renderView renders the entire UI
func renderView(m *Model) string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	const headerHeight = 4
	previewHeight := max(m.height-headerHeight-visibleResults-2, 5)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m),
		renderResults(m),
		renderPreview(m, previewHeight),
	)
}

// renderHeader renders the query and status line
func renderHeader(m *Model) string {
	line := "Find " + queryStyle.Render(m.query.Pattern)
	if m.query.Glob != "" {
		line += statusStyle.Render("  in " + m.query.Glob)
	}
	header := lipgloss.JoinVertical(lipgloss.Left, line, statusStyle.Render(renderStatus(m)))
	return headerStyle.Width(max(m.width-2, 0)).Render(header)
}

// renderStatus renders the status information
func renderStatus(m *Model) string {
	if m.isSearching {
		return "Searching..."
	}
	if m.searchError != nil {
		return fmt.Sprintf("Error: %s", m.searchError.Error())
	}
	if m.openError != nil {
		return fmt.Sprintf("Error opening editor: %s", m.openError.Error())
	}
	if len(m.searchResults) == 0 {
		return "No matches found"
	}

	files := make(map[string]bool)
	for _, result := range m.searchResults {
		files[result.File] = true
	}
	if len(files) == 1 {
		return fmt.Sprintf("%d match in 1 file", len(m.searchResults))
	}
	return fmt.Sprintf("%d matches in %d files", len(m.searchResults), len(files))
}

// renderResults renders the visible part of the results list
func renderResults(m *Model) string {
	if len(m.searchResults) == 0 {
		return ""
	}

	end := min(m.resultsOffset+visibleResults, len(m.searchResults))
	lines := make([]string, 0, end-m.resultsOffset)
	for i := m.resultsOffset; i < end; i++ {
		line := formatResult(m.searchResults[i])
		if i == m.selectedIndex {
			line = selectedResultStyle.Render(line)
		} else {
			line = resultStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatResult formats a result as "name:line  text"
func formatResult(r *search.SearchResult) string {
	return fmt.Sprintf("%s:%d  %s", filepath.Base(r.File), r.Line, strings.TrimSpace(r.Text))
}

// renderPreview renders the snippet of the selected result
func renderPreview(m *Model, maxHeight int) string {
	if m.previewError != nil {
		return errorStyle.Render("Error loading preview: " + m.previewError.Error())
	}
	if m.preview == "" || m.selectedIndex < 0 {
		return ""
	}

	r := m.searchResults[m.selectedIndex]
	lines := []string{previewHeaderStyle.Render(fmt.Sprintf("%s:%d", r.File, r.Line))}
	for _, line := range strings.Split(m.preview, "\n") {
		if len(lines) >= maxHeight-1 {
			break
		}
		lines = append(lines, line)
	}

	return previewStyle.Width(max(m.width-2, 0)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
