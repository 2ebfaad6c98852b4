package state

import "github.com/atomicstack/term-glossary/internal/glossary"

// CategoryIndex returns the index of the active category in the bar.
func (b *Browser) CategoryIndex() int {
	return glossary.IndexOfCategory(b.Categories, b.Category)
}

// NextCategory activates the category after the current one, wrapping.
func (b *Browser) NextCategory() bool {
	return b.shiftCategory(1)
}

// PrevCategory activates the category before the current one, wrapping.
func (b *Browser) PrevCategory() bool {
	return b.shiftCategory(-1)
}

// SelectCategoryIndex activates the category at idx.
func (b *Browser) SelectCategoryIndex(idx int) bool {
	if idx < 0 || idx >= len(b.Categories) {
		return false
	}
	return b.SetCategory(b.Categories[idx])
}

func (b *Browser) shiftCategory(delta int) bool {
	n := len(b.Categories)
	if n <= 1 {
		return false
	}
	idx := b.CategoryIndex()
	if idx < 0 {
		idx = 0
	}
	return b.SelectCategoryIndex((idx + delta + n) % n)
}
