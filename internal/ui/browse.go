// Package ui provides an interactive terminal browser for clustered log
// results.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hwdoctor/internal/common"
)

var (
	browseTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	browseCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	browseCountStyle  = lipgloss.NewStyle().Faint(true)
	browseHelpStyle   = lipgloss.NewStyle().Faint(true)
)

// BrowseModel is a scrollable list over cluster entries.
type BrowseModel struct {
	title    string
	entries  []common.ClusterEntry
	cursor   int
	offset   int
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewBrowseModel creates a browser over the given entries.
func NewBrowseModel(title string, entries []common.ClusterEntry) *BrowseModel {
	return &BrowseModel{title: title, entries: entries}
}

// Init implements tea.Model.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.entries) - 1
		}
		m.clampOffset()
	}

	return m, nil
}

// View implements tea.Model.
func (m *BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return ""
	}

	header := browseTitleStyle.Render(m.title) +
		browseCountStyle.Render(fmt.Sprintf("  %d issues", len(m.entries)))
	view := header + "\n\n"

	if len(m.entries) == 0 {
		return view + "no issues found\n\n" + browseHelpStyle.Render("q quit")
	}

	for i := m.offset; i < len(m.entries) && i < m.offset+m.visibleRows(); i++ {
		e := m.entries[i]
		line := e.Display()
		if i == m.cursor {
			line = browseCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		view += line + "\n"
	}

	view += "\n" + browseHelpStyle.Render("j/k move · g/G top/bottom · q quit")
	return view
}

// visibleRows leaves room for the header and footer.
func (m *BrowseModel) visibleRows() int {
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *BrowseModel) clampOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// Browse runs the interactive browser until the user quits.
func Browse(title string, entries []common.ClusterEntry) error {
	p := tea.NewProgram(NewBrowseModel(title, entries))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
