package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/term-glossary/internal/backend"
	"github.com/atomicstack/term-glossary/internal/data/dispatcher"
	"github.com/atomicstack/term-glossary/internal/report"
	"github.com/atomicstack/term-glossary/internal/state"
	"github.com/atomicstack/term-glossary/internal/theme"
	"github.com/atomicstack/term-glossary/internal/ui/command"
	uistate "github.com/atomicstack/term-glossary/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeFontPicker
	ModeReport
	ModeContact
)

const (
	appTitle               = "音频术语表"
	defaultReportCloseWait = 3 * time.Second
	defaultContactText     = "如需联系作者，请通过错误报告留下联系方式。"
)

type msgHandler func(tea.Msg) tea.Cmd

// Reporter submits error reports to the backend.
type Reporter interface {
	SubmitReport(ctx context.Context, fields map[string]string) error
}

// Options configures a Model.
type Options struct {
	Loader     *backend.Loader
	Reporter   Reporter
	Width      int
	Height     int
	ShowFooter bool
	Font       string
	Contact    string
}

// Model implements the Bubble Tea model for the glossary browser.
type Model struct {
	browser    *uistate.Browser
	terms      state.TermStore
	dispatcher *dispatcher.Dispatcher
	loader     *backend.Loader
	reporter   Reporter
	bus        *command.Bus
	ctx        context.Context

	mode       Mode
	styles     *theme.Styles
	font       theme.Font
	fontCursor int

	report           *report.Form
	reportSeq        int
	reportCloseDelay time.Duration
	contact          string

	loading    bool
	loadFailed bool
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	filterCursor      cursor.Model
	filterCursorDirty bool
	focused           bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. The list stays in its loading state until
// the first backend event arrives.
func NewModel(opts Options) *Model {
	terms := state.NewTermStore()
	m := &Model{
		browser:          uistate.NewBrowser(),
		terms:            terms,
		dispatcher:       dispatcher.New(terms),
		loader:           opts.Loader,
		reporter:         opts.Reporter,
		bus:              command.New(),
		ctx:              context.Background(),
		mode:             ModeBrowse,
		report:           report.NewForm(),
		reportCloseDelay: defaultReportCloseWait,
		contact:          opts.Contact,
		loading:          true,
		showFooter:       opts.ShowFooter,
	}
	if m.contact == "" {
		m.contact = defaultContactText
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.filterCursor = cursor.New()
	m.filterCursor.SetChar(" ")
	family := opts.Font
	if _, ok := theme.FontByFamily(family); !ok {
		family = theme.DefaultFamily
	}
	m.applyFont(family)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loader != nil {
		cmds = append(cmds, waitForBackendEvent(m.loader))
	}
	m.focused = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	switch m.mode {
	case ModeReport:
		return m.handleReportForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(reportResultMsg{}):   m.handleReportResultMsg,
		reflect.TypeOf(reportCloseMsg{}):    m.handleReportCloseMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		if m.focused {
			m.filterCursor.Blink = false
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Browser exposes the list state for callers that need to inspect it.
func (m *Model) Browser() *uistate.Browser {
	return m.browser
}

// Mode reports the active interaction mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Font reports the font whose style set is applied.
func (m *Model) Font() theme.Font {
	return m.font
}

// SetContext sets the context used for report submissions.
func (m *Model) SetContext(ctx context.Context) {
	if ctx != nil {
		m.ctx = ctx
	}
}
