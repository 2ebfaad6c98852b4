package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/term-glossary/internal/glossary"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsPlaceholderOnly(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	loadTerms(h, sampleTerms())
	h.Type("zzz")
	view := h.View()
	if !strings.Contains(view, glossary.NoResults) {
		t.Fatalf("expected placeholder, got:\n%s", view)
	}
	for _, s := range []string{"Gain", "增益", "COMP"} {
		if strings.Contains(view, s) {
			t.Fatalf("expected no rows alongside the placeholder, found %q", s)
		}
	}
}

func TestViewCategoryHeadingWithoutInlineCategory(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	loadTerms(h, sampleTerms())
	h.Model().selectCategoryIndex(2)
	view := h.View()
	if !strings.Contains(view, "音频信号 参数") {
		t.Fatalf("expected heading, got:\n%s", view)
	}
	if strings.Contains(view, "(音频信号 参数)") {
		t.Fatalf("expected no inline category in grouped view:\n%s", view)
	}
}

func TestViewRespectsWidth(t *testing.T) {
	h := NewHarness(newTestModel(Options{Width: 20, Height: 12}))
	loadTerms(h, sampleTerms())
	for _, line := range strings.Split(h.View(), "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
}

func TestViewFooterToggle(t *testing.T) {
	m := newTestModel(Options{ShowFooter: true})
	if !strings.Contains(m.View(), "ctrl+t report") {
		t.Fatalf("expected footer when enabled")
	}
	m = newTestModel(Options{})
	if strings.Contains(m.View(), "ctrl+t report") {
		t.Fatalf("expected no footer by default")
	}
}

func TestTruncateTextCountsWideRunes(t *testing.T) {
	if got := truncateText("增益增益", 5); ansi.StringWidth(got) > 5 {
		t.Fatalf("expected at most 5 cells, got %q", got)
	}
	if got := truncateText("Gain", 10); got != "Gain" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
	if got := truncateText("Gain", 0); got != "Gain" {
		t.Fatalf("expected zero width to disable truncation, got %q", got)
	}
}

func TestLimitHeight(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("expected ellipsis row, got %#v", got)
	}
	if len(limitHeight(lines, 0, 10)) != 3 {
		t.Fatalf("expected no limit for zero height")
	}
}
