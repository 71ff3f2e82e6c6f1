package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hwdoctor/internal/common"
)

func testEntries() []common.ClusterEntry {
	return []common.ClusterEntry{
		{Template: "I/O error on sdDEVICE sector 5", Count: 3},
		{Template: "watchdog did not stop", Count: 1},
		{Template: "usb device not accepting address", Count: 2},
	}
}

func sized(m *BrowseModel) *BrowseModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(*BrowseModel)
}

func TestBrowseModelNavigation(t *testing.T) {
	m := sized(NewBrowseModel("test", testEntries()))

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	updated, _ := m.Update(down)
	m = updated.(*BrowseModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	end := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}
	updated, _ = m.Update(end)
	m = updated.(*BrowseModel)
	if m.cursor != 2 {
		t.Errorf("cursor = %d after G, want 2", m.cursor)
	}

	// Moving past the end stays clamped.
	updated, _ = m.Update(down)
	m = updated.(*BrowseModel)
	if m.cursor != 2 {
		t.Errorf("cursor = %d after j at end, want 2", m.cursor)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := sized(NewBrowseModel("test", testEntries()))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(*BrowseModel)
	if !m.quitting {
		t.Error("model not quitting after q")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestBrowseModelView(t *testing.T) {
	m := sized(NewBrowseModel("Clustered Issues", testEntries()))

	view := m.View()
	if !strings.Contains(view, "Clustered Issues") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "I/O error on sdDEVICE sector 5 (x3)") {
		t.Errorf("view missing first entry:\n%s", view)
	}
}

func TestBrowseModelEmpty(t *testing.T) {
	m := sized(NewBrowseModel("empty", nil))

	if view := m.View(); !strings.Contains(view, "no issues found") {
		t.Errorf("empty view missing placeholder:\n%s", view)
	}
}
