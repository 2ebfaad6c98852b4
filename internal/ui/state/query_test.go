package state

import "testing"

func TestSetQueryTracksCursorAndRestoresPosition(t *testing.T) {
	b := newTestBrowser()
	b.Cursor = 3
	b.SetQuery("gain", len("gain"))

	if b.QueryCursor != len("gain") {
		t.Fatalf("expected cursor at end, got %d", b.QueryCursor)
	}
	if len(b.Rows) != 1 || b.Rows[0].Term.English != "Gain" {
		t.Fatalf("expected only Gain, got %#v", b.Rows)
	}
	if b.Cursor != 0 {
		t.Fatalf("expected cursor at match, got %d", b.Cursor)
	}

	b.SetQuery("", 0)
	if b.Cursor != 3 {
		t.Fatalf("expected cursor restored to 3, got %d", b.Cursor)
	}
	if b.lastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", b.lastCursor)
	}
}

func TestSetQueryJumpsToBestMatch(t *testing.T) {
	b := newTestBrowser()
	b.SetQuery("a", 1)
	row, ok := selectedRow(b)
	if !ok || row.Term.English != "Attack" {
		t.Fatalf("expected prefix match Attack, got %#v", row)
	}
}

func TestInsertAndDeleteQueryText(t *testing.T) {
	b := newTestBrowser()

	if !b.InsertQueryText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if b.Query != "ab" || b.QueryCursor != 2 {
		t.Fatalf("unexpected query state %q/%d", b.Query, b.QueryCursor)
	}

	b.QueryCursor = 1
	if !b.InsertQueryText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if b.Query != "azb" || b.QueryCursor != 2 {
		t.Fatalf("expected azb/2, got %q/%d", b.Query, b.QueryCursor)
	}

	if !b.DeleteQueryRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if b.Query != "ab" || b.QueryCursor != 1 {
		t.Fatalf("unexpected query state after delete %q/%d", b.Query, b.QueryCursor)
	}

	b.SetQuery("abc def", len("abc def"))
	if !b.DeleteQueryWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if b.Query != "abc " {
		t.Fatalf("expected trailing word removed, got %q", b.Query)
	}

	b.SetQuery("abc", 0)
	if b.DeleteQueryRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if !b.ClearQuery() || b.Query != "" {
		t.Fatal("expected clear to empty the query")
	}
	if b.ClearQuery() {
		t.Fatal("expected clearing an empty query to report no change")
	}
}

func TestInsertCJKQuery(t *testing.T) {
	b := newTestBrowser()
	b.InsertQueryText("总线")
	if b.QueryCursor != 2 {
		t.Fatalf("expected rune cursor 2, got %d", b.QueryCursor)
	}
	if len(b.Rows) != 1 || b.Rows[0].Term.English != "Bus" {
		t.Fatalf("expected Bus, got %#v", b.Rows)
	}
}

func TestQueryCursorNavigation(t *testing.T) {
	b := newTestBrowser()
	b.SetQuery("one two", len("one two"))

	if !b.MoveQueryCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if b.QueryCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", b.QueryCursor)
	}
	if !b.MoveQueryCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if b.QueryCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", b.QueryCursor)
	}
	if !b.MoveQueryCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if !b.MoveQueryCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if b.MoveQueryCursorRuneForward() {
		t.Fatal("expected no movement past end")
	}
	if !b.MoveQueryCursorStart() || b.QueryCursor != 0 {
		t.Fatal("expected move to start")
	}
	if !b.MoveQueryCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestQueryAppliesWithinCategory(t *testing.T) {
	b := newTestBrowser()
	b.SetCategory("音频效果 处理")
	b.SetQuery("comp", 4)
	if len(b.Rows) != 1 || b.Rows[0].Title() != "COMP (COMP)" {
		t.Fatalf("expected COMP in category view, got %#v", b.Rows)
	}
	b.SetCategory("音频硬件 设备")
	if len(b.Rows) != 0 {
		t.Fatalf("expected no rows, got %#v", b.Rows)
	}
	if b.Query != "comp" {
		t.Fatalf("expected query preserved across category change")
	}
}
