package ui

import (
	"unicode"

	"github.com/atomicstack/term-glossary/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "搜索术语…"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.browser.QueryCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput applies search-bar editing keys. Every edit that changes the
// query re-renders the list.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	b := m.browser
	switch msg.String() {
	case "ctrl+u":
		before := b.QueryCursorPos()
		if !b.ClearQuery() {
			return false
		}
		m.noteFilterCursorChange(before)
		m.afterQueryEdit()
		events.Filter.Cleared(b.Category)
		return true
	case "ctrl+w":
		before := b.QueryCursorPos()
		if !b.DeleteQueryWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		m.afterQueryEdit()
		events.Filter.WordBackspace(b.Query)
		return true
	case "ctrl+a":
		before := b.QueryCursorPos()
		if !b.MoveQueryCursorStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(b.QueryCursor)
		return true
	case "ctrl+e":
		before := b.QueryCursorPos()
		if !b.MoveQueryCursorEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(b.QueryCursor)
		return true
	case "alt+b":
		before := b.QueryCursorPos()
		if !b.MoveQueryCursorWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(b.QueryCursor)
		return true
	case "alt+f":
		before := b.QueryCursorPos()
		if !b.MoveQueryCursorWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(b.QueryCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeQueryRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToQuery(" ")
	case tea.KeyLeft:
		before := b.QueryCursorPos()
		if !b.MoveQueryCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(b.QueryCursor)
		return true
	case tea.KeyRight:
		before := b.QueryCursorPos()
		if !b.MoveQueryCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(b.QueryCursor)
		return true
	}
	return false
}

func (m *Model) appendToQuery(text string) bool {
	if text == "" {
		return false
	}
	before := m.browser.QueryCursorPos()
	if !m.browser.InsertQueryText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.afterQueryEdit()
	events.Filter.Append(m.browser.Query)
	return true
}

func (m *Model) removeQueryRune() bool {
	before := m.browser.QueryCursorPos()
	if !m.browser.DeleteQueryRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.afterQueryEdit()
	events.Filter.Backspace(m.browser.Query)
	return true
}

func (m *Model) afterQueryEdit() {
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport()
	events.Filter.Rendered(m.browser.Query, m.browser.Category, len(m.browser.Rows))
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	m.filterCursor.Style = m.styles.Cursor.Copy()
	m.filterCursor.TextStyle = m.styles.Filter.Copy()
	prompt := m.styles.FilterPrompt.Render("» ")
	text := m.browser.Query
	if text == "" {
		runes := []rune(searchPlaceholder)
		m.filterCursor.TextStyle = m.styles.FilterPlaceholder.Copy()
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(m.styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.browser.QueryCursorPos()
	before := render(m.styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(m.styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	cursorStyle := m.styles.Cursor.Copy().Inline(true)
	return base.Inherit(cursorStyle).Blink(false).Render(char)
}
