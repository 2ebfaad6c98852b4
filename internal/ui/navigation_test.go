package ui

import (
	"testing"

	"github.com/atomicstack/term-glossary/internal/glossary"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleEscapeKeyClearsQueryThenQuits(t *testing.T) {
	m := newTestModel(Options{})
	m.browser.SetQuery("gain", 4)
	if cmd := m.handleEscapeKey(); cmd != nil {
		t.Fatalf("expected no command when clearing the query")
	}
	if m.browser.Query != "" {
		t.Fatalf("expected query cleared, got %q", m.browser.Query)
	}
	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	for _, mode := range []Mode{ModeBrowse, ModeFontPicker, ModeReport, ModeContact} {
		m := newTestModel(Options{})
		m.mode = mode
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if cmd == nil {
			t.Fatalf("mode %d: expected quit command", mode)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("mode %d: expected tea.QuitMsg", mode)
		}
	}
}

func TestCategoryShortcut(t *testing.T) {
	if idx, ok := categoryShortcut(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3"), Alt: true}); !ok || idx != 2 {
		t.Fatalf("expected alt+3 to map to 2, got %d/%v", idx, ok)
	}
	if _, ok := categoryShortcut(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")}); ok {
		t.Fatalf("expected plain 3 to be ignored")
	}
	if _, ok := categoryShortcut(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0"), Alt: true}); ok {
		t.Fatalf("expected alt+0 to be ignored")
	}
}

func TestCategoryKeysRerenderWithQuery(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	loadTerms(h, sampleTerms())
	h.Type("i")

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2"), Alt: true})
	b := h.Model().Browser()
	if b.Category != "音频硬件 设备" {
		t.Fatalf("expected hardware category, got %q", b.Category)
	}
	if b.Query != "i" {
		t.Fatalf("expected query kept, got %q", b.Query)
	}
	if len(b.View.Sections) != 1 || b.View.Sections[0].Heading != "音频硬件 设备" {
		t.Fatalf("expected grouped hardware section, got %#v", b.View.Sections)
	}

	h.Press(tea.KeyShiftTab)
	h.Press(tea.KeyShiftTab)
	if b.Category != glossary.Uncategorized {
		t.Fatalf("expected wrap to the last category, got %q", b.Category)
	}
}

func TestListNavigationKeys(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	loadTerms(h, sampleTerms())
	b := h.Model().Browser()

	h.Press(tea.KeyDown)
	if b.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", b.Cursor)
	}
	h.Press(tea.KeyEnd)
	if b.Cursor != len(b.Rows)-1 {
		t.Fatalf("expected cursor at end, got %d", b.Cursor)
	}
	h.Press(tea.KeyHome)
	if b.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", b.Cursor)
	}
	h.Press(tea.KeyUp)
	if b.Cursor != len(b.Rows)-1 {
		t.Fatalf("expected wrap to end, got %d", b.Cursor)
	}
	h.Press(tea.KeyPgUp)
	if b.Cursor != 0 {
		t.Fatalf("expected page up to reach start, got %d", b.Cursor)
	}
}

func TestReloadWithoutLoaderIsNoop(t *testing.T) {
	m := newTestModel(Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.currentInfo() != "" {
		t.Fatalf("expected no info without a loader")
	}
}
