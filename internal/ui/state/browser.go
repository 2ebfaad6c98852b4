package state

import (
	"github.com/atomicstack/term-glossary/internal/glossary"
)

// Browser holds the glossary list state: the term snapshot, the active query
// and category, the laid-out lines and the row cursor with its viewport.
type Browser struct {
	Terms          []glossary.Term
	Categories     []string
	Category       string
	Query          string
	QueryCursor    int
	View           glossary.View
	Lines          []glossary.Line
	Rows           []glossary.Row
	Cursor         int
	ViewportOffset int

	lastCursor int
}

// NewBrowser returns an empty browser showing the "All" category. The
// category bar stays empty until SetTerms supplies a snapshot.
func NewBrowser() *Browser {
	b := &Browser{
		Category:   glossary.CategoryAll,
		lastCursor: -1,
	}
	b.render()
	return b
}

// Filter returns the explicit filter state used for rendering.
func (b *Browser) Filter() glossary.Filter {
	return glossary.Filter{Query: b.Query, Category: b.Category}
}

// SetTerms replaces the snapshot. The active category survives when it still
// exists, otherwise the browser falls back to "All".
func (b *Browser) SetTerms(terms []glossary.Term, categories []string) {
	b.Terms = glossary.CloneTerms(terms)
	b.Categories = append([]string(nil), categories...)
	if len(b.Categories) == 0 {
		b.Categories = glossary.Categories(b.Terms)
	}
	if glossary.IndexOfCategory(b.Categories, b.Category) < 0 {
		b.Category = glossary.CategoryAll
	}
	b.render()
}

// SetCategory switches the active category and re-renders with the current
// query. Unknown categories are ignored.
func (b *Browser) SetCategory(category string) bool {
	if glossary.IndexOfCategory(b.Categories, category) < 0 {
		return false
	}
	if category == b.Category {
		return false
	}
	b.Category = category
	b.Cursor = 0
	b.ViewportOffset = 0
	b.render()
	return true
}

func (b *Browser) render() {
	b.View = glossary.Render(b.Terms, b.Filter())
	b.Lines = b.View.Lines()
	b.Rows = b.View.Rows()
	if len(b.Rows) == 0 {
		b.Cursor = 0
		b.ViewportOffset = 0
		return
	}
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	if b.Cursor >= len(b.Rows) {
		b.Cursor = len(b.Rows) - 1
	}
	if b.ViewportOffset > len(b.Lines)-1 {
		b.ViewportOffset = 0
	}
}

// CursorLine returns the line index of the selected row, or -1.
func (b *Browser) CursorLine() int {
	for i, line := range b.Lines {
		if line.Kind == glossary.LineRow && line.Row == b.Cursor {
			return i
		}
	}
	return -1
}
