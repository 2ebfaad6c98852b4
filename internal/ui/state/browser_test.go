package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/term-glossary/internal/glossary"
)

func testTerms() []glossary.Term {
	return []glossary.Term{
		{English: "Gain", Chinese: "增益", Abbreviation: "null", Category: "音频信号 参数"},
		{English: "", Chinese: "压缩器", Abbreviation: "COMP", Category: "音频效果 处理"},
		{English: "Direct Input", Chinese: "直接输入", Abbreviation: "DI", Category: "音频硬件 设备"},
		{English: "Bus", Chinese: "总线", Category: "音频硬件 设备"},
		{English: "Attack", Chinese: "启动时间", Category: "音频效果 处理"},
	}
}

func newTestBrowser() *Browser {
	b := NewBrowser()
	terms := testTerms()
	b.SetTerms(terms, glossary.Categories(terms))
	return b
}

func selectedRow(b *Browser) (glossary.Row, bool) {
	if b.Cursor < 0 || b.Cursor >= len(b.Rows) {
		return glossary.Row{}, false
	}
	return b.Rows[b.Cursor], true
}

func TestNewBrowserShowsPlaceholder(t *testing.T) {
	b := NewBrowser()
	if b.Category != glossary.CategoryAll {
		t.Fatalf("expected All category, got %q", b.Category)
	}
	if len(b.Lines) != 1 || b.Lines[0].Text != glossary.NoResults {
		t.Fatalf("expected placeholder line, got %#v", b.Lines)
	}
	if _, ok := selectedRow(b); ok {
		t.Fatalf("expected no selected row")
	}
	if len(b.Categories) != 0 {
		t.Fatalf("expected no categories before terms load, got %v", b.Categories)
	}
}

func TestSetTermsKeepsExistingCategory(t *testing.T) {
	b := newTestBrowser()
	if !b.SetCategory("音频硬件 设备") {
		t.Fatalf("expected category switch")
	}
	terms := testTerms()[2:]
	b.SetTerms(terms, glossary.Categories(terms))
	if b.Category != "音频硬件 设备" {
		t.Fatalf("expected category kept, got %q", b.Category)
	}
	terms = testTerms()[:1]
	b.SetTerms(terms, glossary.Categories(terms))
	if b.Category != glossary.CategoryAll {
		t.Fatalf("expected fallback to All, got %q", b.Category)
	}
}

func TestSetCategoryRejectsUnknown(t *testing.T) {
	b := newTestBrowser()
	if b.SetCategory("missing") {
		t.Fatalf("expected unknown category to be ignored")
	}
	if b.SetCategory(glossary.CategoryAll) {
		t.Fatalf("expected no change when re-selecting the active category")
	}
}

func TestCategoryCycling(t *testing.T) {
	b := newTestBrowser()
	want := []string{glossary.CategoryAll, "音频硬件 设备", "音频信号 参数", "音频效果 处理"}
	if !reflect.DeepEqual(b.Categories, want) {
		t.Fatalf("expected categories %v, got %v", want, b.Categories)
	}
	b.NextCategory()
	if b.Category != "音频硬件 设备" {
		t.Fatalf("expected next category, got %q", b.Category)
	}
	b.PrevCategory()
	b.PrevCategory()
	if b.Category != "音频效果 处理" {
		t.Fatalf("expected wrap to last, got %q", b.Category)
	}
	if b.SelectCategoryIndex(9) {
		t.Fatalf("expected out of range index to fail")
	}
	if !b.SelectCategoryIndex(0) || b.Category != glossary.CategoryAll {
		t.Fatalf("expected jump to All")
	}
}

func TestCursorLineSkipsHeadings(t *testing.T) {
	b := newTestBrowser()
	b.SetCategory("音频硬件 设备")
	if b.Lines[0].Kind != glossary.LineHeading {
		t.Fatalf("expected heading first")
	}
	if got := b.CursorLine(); got != 1 {
		t.Fatalf("expected first row on line 1, got %d", got)
	}
	row, ok := selectedRow(b)
	if !ok || row.Term.English != "Direct Input" {
		t.Fatalf("expected Direct Input selected, got %#v", row)
	}
}
