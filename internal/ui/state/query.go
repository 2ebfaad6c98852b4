package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/term-glossary/internal/glossary"
)

// SetQuery updates the search query and cursor position, re-renders, and moves
// the row cursor to the best match. Clearing the query restores the row the
// cursor was on before the search started.
func (b *Browser) SetQuery(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(b.Query)
	restore := -1
	b.Query = query
	runes := []rune(b.Query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	b.QueryCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			b.lastCursor = b.Cursor
		}
		b.Cursor = 0
	} else if prevTrimmed != "" {
		restore = b.lastCursor
	}
	b.render()
	if trimmed != "" && len(b.Rows) > 0 {
		if idx := glossary.BestMatch(b.Rows, trimmed); idx >= 0 {
			b.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(b.Rows) {
			b.Cursor = restore
		} else {
			b.Cursor = 0
		}
		b.lastCursor = -1
	}
}

// QueryCursorPos returns the rune offset of the query cursor.
func (b *Browser) QueryCursorPos() int {
	runes := []rune(b.Query)
	if b.QueryCursor < 0 {
		return 0
	}
	if b.QueryCursor > len(runes) {
		return len(runes)
	}
	return b.QueryCursor
}

// InsertQueryText inserts text into the query at the cursor position.
func (b *Browser) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	b.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes a rune before the query cursor.
func (b *Browser) DeleteQueryRuneBackward() bool {
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	b.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the cursor.
func (b *Browser) DeleteQueryWordBackward() bool {
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	b.SetQuery(string(updated), i)
	return true
}

// ClearQuery empties the query.
func (b *Browser) ClearQuery() bool {
	if b.Query == "" {
		return false
	}
	b.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (b *Browser) MoveQueryCursorStart() bool {
	if b.QueryCursorPos() == 0 {
		return false
	}
	b.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (b *Browser) MoveQueryCursorEnd() bool {
	end := len([]rune(b.Query))
	if b.QueryCursorPos() == end {
		return false
	}
	b.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the query cursor one word backward.
func (b *Browser) MoveQueryCursorWordBackward() bool {
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	b.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the query cursor one word forward.
func (b *Browser) MoveQueryCursorWordForward() bool {
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	b.QueryCursor = i
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (b *Browser) MoveQueryCursorRuneBackward() bool {
	if b.QueryCursorPos() == 0 {
		return false
	}
	b.QueryCursor = b.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (b *Browser) MoveQueryCursorRuneForward() bool {
	pos := b.QueryCursorPos()
	if pos >= len([]rune(b.Query)) {
		return false
	}
	b.QueryCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
