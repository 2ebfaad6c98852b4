package state

// MoveCursorUp moves the cursor to the previous row, wrapping to the last.
func (b *Browser) MoveCursorUp() bool {
	n := len(b.Rows)
	if n == 0 {
		return false
	}
	if b.Cursor > 0 {
		b.Cursor--
	} else {
		b.Cursor = n - 1
	}
	return n > 1
}

// MoveCursorDown moves the cursor to the next row, wrapping to the first.
func (b *Browser) MoveCursorDown() bool {
	n := len(b.Rows)
	if n == 0 {
		return false
	}
	if b.Cursor < n-1 {
		b.Cursor++
	} else {
		b.Cursor = 0
	}
	return n > 1
}

// MoveCursorHome moves the cursor to the first row.
func (b *Browser) MoveCursorHome() bool {
	if len(b.Rows) == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	b.Cursor = 0
	return old != b.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (b *Browser) MoveCursorEnd() bool {
	n := len(b.Rows)
	if n == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	b.Cursor = n - 1
	return old != b.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (b *Browser) MoveCursorPageUp(maxVisible int) bool {
	return b.moveCursorBy(-b.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (b *Browser) MoveCursorPageDown(maxVisible int) bool {
	return b.moveCursorBy(b.pageSize(maxVisible))
}

func (b *Browser) moveCursorBy(delta int) bool {
	if len(b.Rows) == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	b.Cursor += delta
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	if b.Cursor >= len(b.Rows) {
		b.Cursor = len(b.Rows) - 1
	}
	return b.Cursor != old
}

func (b *Browser) pageSize(maxVisible int) int {
	total := len(b.Rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the line offset so the cursor row stays visible.
// A heading directly above the cursor row is kept on screen with it when the
// window has room.
func (b *Browser) EnsureCursorVisible(maxVisible int) {
	if len(b.Lines) == 0 {
		b.ViewportOffset = 0
		return
	}
	if maxVisible <= 0 {
		b.ViewportOffset = 0
		return
	}
	maxOffset := len(b.Lines) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if b.ViewportOffset > maxOffset {
		b.ViewportOffset = maxOffset
	}
	if b.ViewportOffset < 0 {
		b.ViewportOffset = 0
	}
	line := b.CursorLine()
	if line < 0 {
		return
	}
	top := line
	if top > 0 && b.Lines[top-1].Row < 0 && maxVisible > 1 {
		top--
	}
	if top < b.ViewportOffset {
		b.ViewportOffset = top
	}
	upper := b.ViewportOffset + maxVisible - 1
	if line > upper {
		b.ViewportOffset = line - maxVisible + 1
		if b.ViewportOffset > maxOffset {
			b.ViewportOffset = maxOffset
		}
	}
}

// VisibleLines returns the window of lines starting at the viewport offset.
func (b *Browser) VisibleLines(maxVisible int) (int, int) {
	start := b.ViewportOffset
	if start < 0 {
		start = 0
	}
	if maxVisible <= 0 || len(b.Lines) <= maxVisible {
		return 0, len(b.Lines)
	}
	if start+maxVisible > len(b.Lines) {
		start = len(b.Lines) - maxVisible
	}
	return start, start + maxVisible
}
