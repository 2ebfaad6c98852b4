package ui

import (
	"github.com/atomicstack/term-glossary/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		events.App.Quit("ctrl+c")
		return tea.Quit
	}
	switch m.mode {
	case ModeContact:
		return m.handleContactKey(keyMsg)
	case ModeFontPicker:
		if m.handleFontPickerKey(keyMsg) {
			return nil
		}
	case ModeReport:
		return nil
	}
	return m.handleBrowseKey(keyMsg)
}

func (m *Model) handleBrowseKey(keyMsg tea.KeyMsg) tea.Cmd {
	if idx, ok := categoryShortcut(keyMsg); ok {
		m.selectCategoryIndex(idx)
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "ctrl+r":
		m.reloadTerms()
	case "ctrl+f":
		m.openFontPicker()
	case "ctrl+t":
		m.openReport()
	case "ctrl+o":
		m.openContact()
	case "tab":
		if m.browser.NextCategory() {
			m.afterCategoryChange()
		}
	case "shift+tab":
		if m.browser.PrevCategory() {
			m.afterCategoryChange()
		}
	case "up":
		m.moveCursor(m.browser.MoveCursorUp)
	case "down":
		m.moveCursor(m.browser.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.browser.MoveCursorPageUp(m.maxVisibleLines()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.browser.MoveCursorPageDown(m.maxVisibleLines()) })
	case "home":
		m.moveCursor(m.browser.MoveCursorHome)
	case "end":
		m.moveCursor(m.browser.MoveCursorEnd)
	}
	return nil
}

// handleEscapeKey clears a non-empty query first and quits otherwise.
func (m *Model) handleEscapeKey() tea.Cmd {
	before := m.browser.QueryCursorPos()
	if m.browser.ClearQuery() {
		m.noteFilterCursorChange(before)
		m.afterQueryEdit()
		events.Filter.Cleared(m.browser.Category)
		return nil
	}
	events.App.Quit("escape")
	return tea.Quit
}

// categoryShortcut maps alt+1..alt+9 to a category bar index.
func categoryShortcut(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

func (m *Model) selectCategoryIndex(idx int) {
	if m.browser.SelectCategoryIndex(idx) {
		m.afterCategoryChange()
	}
}

func (m *Model) afterCategoryChange() {
	events.Category.Select(m.browser.Category)
	m.errMsg = ""
	m.syncViewport()
	events.Filter.Rendered(m.browser.Query, m.browser.Category, len(m.browser.Rows))
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.List.Cursor(m.browser.Cursor)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.browser.EnsureCursorVisible(m.maxVisibleLines())
}

func (m *Model) reloadTerms() {
	if m.loader == nil {
		return
	}
	queued := m.loader.Reload()
	events.Terms.Reload(queued)
	if queued {
		m.setInfo("正在重新加载术语…")
	}
}
