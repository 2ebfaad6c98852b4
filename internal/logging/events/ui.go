package events

import "github.com/atomicstack/term-glossary/internal/logging"

type FilterTracer struct{}

type CategoryTracer struct{}

type ListTracer struct{}

type FontTracer struct{}

type CommandTracer struct{}

var (
	Filter   = FilterTracer{}
	Category = CategoryTracer{}
	List     = ListTracer{}
	Font     = FontTracer{}
	Command  = CommandTracer{}
)

func (FilterTracer) Cleared(category string) {
	logging.Trace("filter.clear", map[string]interface{}{"category": category})
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Rendered(query, category string, rows int) {
	logging.Trace("filter.render", map[string]interface{}{"query": query, "category": category, "rows": rows})
}

func (CategoryTracer) Select(category string) {
	logging.Trace("category.select", map[string]interface{}{"category": category})
}

func (ListTracer) Cursor(row int) {
	logging.Trace("list.cursor", map[string]interface{}{"row": row})
}

func (FontTracer) Open() {
	logging.Trace("font.open", nil)
}

func (FontTracer) Select(name, family string) {
	logging.Trace("font.select", map[string]interface{}{"name": name, "family": family})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}
