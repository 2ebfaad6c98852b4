package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/term-glossary/internal/glossary"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	loadingText = "加载中…"
	footerText  = "↑/↓ move  tab category  ctrl+f font  ctrl+t report  ctrl+o contact  ctrl+r reload  esc clear/quit"
	// title, category bar, blank separator, status line, prompt
	chromeRows = 5
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI escapes
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.titleText(), style: m.styles.Title})
	lines = append(lines, styledLine{text: m.categoryBar(), raw: true})
	lines = append(lines, styledLine{})

	switch m.mode {
	case ModeReport:
		lines = append(lines, m.modalLines(m.viewReportForm())...)
	case ModeContact:
		lines = append(lines, m.modalLines(m.viewContact())...)
	case ModeFontPicker:
		lines = append(lines, m.modalLines(m.viewFontPicker())...)
	default:
		lines = append(lines, m.listLines()...)
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: m.styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: m.styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: m.styles.Error}
	}
	bottomLines := applyWidth([]styledLine{statusLine, {text: m.filterPrompt(), raw: true}}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) titleText() string {
	return appTitle + "  ·  " + m.font.Name
}

// categoryBar renders every category, highlighting the active one.
func (m *Model) categoryBar() string {
	active := m.browser.CategoryIndex()
	parts := make([]string, len(m.browser.Categories))
	for i, category := range m.browser.Categories {
		style := m.styles.Category
		if i == active {
			style = m.styles.ActiveCategory
		}
		parts[i] = style.Render(category)
	}
	return strings.Join(parts, " ")
}

// listLines lays out the visible window of the term list.
func (m *Model) listLines() []styledLine {
	if !m.searchable() {
		if m.loadFailed {
			return []styledLine{{text: FetchFailed, style: m.styles.Error}}
		}
		return []styledLine{{text: loadingText, style: m.styles.Loading}}
	}
	b := m.browser
	m.syncViewport()
	start, end := b.VisibleLines(m.maxVisibleLines())
	out := make([]styledLine, 0, end-start)
	for _, line := range b.Lines[start:end] {
		switch line.Kind {
		case glossary.LinePlaceholder:
			out = append(out, styledLine{text: line.Text, style: m.styles.Placeholder})
		case glossary.LineHeading:
			out = append(out, styledLine{text: line.Text, style: m.styles.Heading})
		default:
			out = append(out, m.buildRowLine(line))
		}
	}
	return out
}

// buildRowLine pads the selected row so its background spans the width.
func (m *Model) buildRowLine(line glossary.Line) styledLine {
	if line.Row != m.browser.Cursor {
		return styledLine{text: "  " + line.Text, style: m.styles.Item}
	}
	text := "› " + line.Text
	if m.width > 0 {
		if pad := m.width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{text: text, style: m.styles.SelectedItem}
}

func (m *Model) modalLines(body []string) []styledLine {
	box := m.styles.Modal.Render(strings.Join(body, "\n"))
	rows := strings.Split(box, "\n")
	out := make([]styledLine, len(rows))
	for i, row := range rows {
		out[i] = styledLine{text: row, raw: true}
	}
	return out
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// maxVisibleLines returns how many list lines fit, or -1 when the height is
// unknown.
func (m *Model) maxVisibleLines() int {
	if m.height <= 0 {
		return -1
	}
	used := chromeRows
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:  truncateText(line.text, width),
			style: line.style,
			raw:   line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width display cells. Wide CJK runes count as
// two cells and ANSI sequences are preserved.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
