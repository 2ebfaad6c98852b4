package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestModel(Options{})
	handled := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if m.browser.Query != "abc" {
		t.Fatalf("expected query 'abc', got %q", m.browser.Query)
	}
	if pos := m.browser.QueryCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputIgnoresAltRunes(t *testing.T) {
	m := newTestModel(Options{})
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true}) {
		t.Fatalf("expected alt+1 to be left for the category shortcut")
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestModel(Options{})
	m.browser.SetQuery("abc", 3)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := m.browser.QueryCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := m.browser.QueryCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlA}) {
		t.Fatalf("expected ctrl+a to be handled")
	}
	if m.browser.QueryCursorPos() != 0 {
		t.Fatalf("expected cursor at start")
	}
}

func TestHandleTextInputEditing(t *testing.T) {
	m := newTestModel(Options{})
	m.browser.SetQuery("direct input", len("direct input"))
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}) {
		t.Fatalf("expected ctrl+w to be handled")
	}
	if m.browser.Query != "direct " {
		t.Fatalf("expected word removed, got %q", m.browser.Query)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("expected backspace to be handled")
	}
	if m.browser.Query != "direct" {
		t.Fatalf("expected trailing space removed, got %q", m.browser.Query)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u to be handled")
	}
	if m.browser.Query != "" {
		t.Fatalf("expected query cleared, got %q", m.browser.Query)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u on empty query to be unhandled")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestModel(Options{})
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "索术语") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	m.browser.SetQuery("gain", 4)
	if prompt := m.filterPrompt(); !strings.Contains(prompt, "gain") {
		t.Fatalf("expected query in prompt, got %q", prompt)
	}
}
