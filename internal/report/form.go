// Package report holds the error-report form shown in the report modal.
package report

import (
	"strings"

	"github.com/atomicstack/term-glossary/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	SuccessText   = "报告已提交，感谢您的反馈！"
	FailurePrefix = "提交失败: "
	NetworkText   = "提交失败，请检查网络或稍后再试。"
)

// Field describes one input of the report form.
type Field struct {
	Name     string
	Label    string
	Optional bool
}

var fields = []Field{
	{Name: "term", Label: "术语"},
	{Name: "error_type", Label: "错误类型"},
	{Name: "description", Label: "错误描述"},
	{Name: "contact", Label: "联系方式", Optional: true},
}

// Fields returns the form fields in focus order.
func Fields() []Field {
	dup := make([]Field, len(fields))
	copy(dup, fields)
	return dup
}

// MessageKind classifies the status line under the form.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageSuccess
	MessageError
)

type Form struct {
	inputs  []textinput.Model
	focus   int
	message string
	kind    MessageKind
	title   string
	help    string
}

func NewForm() *Form {
	f := &Form{
		title: "报告错误",
		help:  "Tab to move. Enter on the last field or Ctrl+S to submit. Esc to close.",
	}
	f.inputs = make([]textinput.Model, len(fields))
	for i, field := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = field.Label
		ti.CharLimit = 512
		ti.Cursor.SetMode(cursor.CursorStatic)
		f.inputs[i] = ti
	}
	f.Reset()
	return f
}

// Reset clears every field and the status message and focuses the first input.
func (f *Form) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.message = ""
	f.kind = MessageNone
}

func (f *Form) Title() string            { return f.title }
func (f *Form) Help() string             { return f.help }
func (f *Form) Focus() int               { return f.focus }
func (f *Form) Message() string          { return f.message }
func (f *Form) MessageKind() MessageKind { return f.kind }

// InputView renders the input at index i.
func (f *Form) InputView(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].View()
}

// Value returns the trimmed value of the named field.
func (f *Form) Value(name string) string {
	for i, field := range fields {
		if field.Name == name {
			return strings.TrimSpace(f.inputs[i].Value())
		}
	}
	return ""
}

// Values returns the request body: every field name mapped to its value.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(fields))
	for i, field := range fields {
		out[field.Name] = f.inputs[i].Value()
	}
	return out
}

func (f *Form) SetSuccess() {
	f.message = SuccessText
	f.kind = MessageSuccess
}

// SetFailure shows a non-2xx response body verbatim.
func (f *Form) SetFailure(body string) {
	f.message = FailurePrefix + body
	f.kind = MessageError
}

func (f *Form) SetNetworkFailure() {
	f.message = NetworkText
	f.kind = MessageError
}

func (f *Form) setInvalid(label string) {
	f.message = label + "不能为空"
	f.kind = MessageError
}

func (f *Form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// Update handles a key for the form. It reports whether the caller should
// submit the form and whether the modal was dismissed.
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "esc":
			events.Report.Close(events.ReportReasonEscape)
			return nil, false, true
		case "tab", "down":
			f.move(1)
			return nil, false, false
		case "shift+tab", "up":
			f.move(-1)
			return nil, false, false
		case "ctrl+s":
			return nil, f.validate(), false
		case "enter":
			if f.focus < len(f.inputs)-1 {
				f.move(1)
				return nil, false, false
			}
			return nil, f.validate(), false
		case "ctrl+u":
			f.inputs[f.focus].SetValue("")
			f.inputs[f.focus].CursorStart()
			return nil, false, false
		}
	}
	updated, cmd := f.inputs[f.focus].Update(msg)
	f.inputs[f.focus] = updated
	return cmd, false, false
}

func (f *Form) validate() bool {
	for i, field := range fields {
		if field.Optional {
			continue
		}
		if strings.TrimSpace(f.inputs[i].Value()) == "" {
			events.Report.Invalid(field.Name)
			f.setInvalid(field.Label)
			f.inputs[f.focus].Blur()
			f.focus = i
			f.inputs[i].Focus()
			return false
		}
	}
	f.message = ""
	f.kind = MessageNone
	events.Report.Submit(f.Values())
	return true
}
