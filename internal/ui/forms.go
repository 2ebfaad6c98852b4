package ui

import (
	"strings"

	"github.com/atomicstack/term-glossary/internal/logging/events"
	"github.com/atomicstack/term-glossary/internal/report"
	"github.com/atomicstack/term-glossary/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openReport() {
	m.reportSeq++
	m.report.Reset()
	m.mode = ModeReport
	events.Report.Open()
}

func (m *Model) closeReport() {
	m.mode = ModeBrowse
}

func (m *Model) handleReportForm(msg tea.Msg) (bool, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		events.App.Quit("ctrl+c")
		return true, tea.Quit
	}
	cmd, submit, cancel := m.report.Update(msg)
	if cancel {
		m.closeReport()
		return true, cmd
	}
	if submit {
		return true, m.submitReportCmd(m.report.Values())
	}
	return true, cmd
}

func (m *Model) openContact() {
	m.mode = ModeContact
}

func (m *Model) handleContactKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+o", "enter":
		m.mode = ModeBrowse
	}
	return nil
}

func (m *Model) openFontPicker() {
	m.fontCursor = 0
	for i, f := range theme.Fonts() {
		if f.Family == m.font.Family {
			m.fontCursor = i
		}
	}
	m.mode = ModeFontPicker
	events.Font.Open()
}

// handleFontPickerKey reports whether the key was consumed by the picker. Any
// other key closes the picker and falls through to the list.
func (m *Model) handleFontPickerKey(msg tea.KeyMsg) bool {
	fonts := theme.Fonts()
	switch msg.String() {
	case "up":
		m.fontCursor = (m.fontCursor - 1 + len(fonts)) % len(fonts)
		return true
	case "down":
		m.fontCursor = (m.fontCursor + 1) % len(fonts)
		return true
	case "enter":
		m.applyFont(fonts[m.fontCursor].Family)
		m.mode = ModeBrowse
		return true
	case "esc", "ctrl+f":
		m.mode = ModeBrowse
		return true
	}
	m.mode = ModeBrowse
	return false
}

func (m *Model) applyFont(family string) {
	font, ok := theme.FontByFamily(family)
	if !ok {
		return
	}
	m.font = font
	m.styles = theme.ForFont(family)
	m.filterCursor.Style = m.styles.Cursor.Copy()
	m.filterCursor.TextStyle = m.styles.Filter.Copy()
	events.Font.Select(font.Name, font.Family)
}

func (m *Model) viewReportForm() []string {
	form := m.report
	lines := []string{m.styles.ModalTitle.Render(form.Title()), ""}
	for i, field := range report.Fields() {
		label := field.Label
		if field.Optional {
			label += "（可选）"
		}
		marker := "  "
		if i == form.Focus() {
			marker = "› "
		}
		lines = append(lines, marker+m.styles.Label.Render(label+": ")+form.InputView(i))
	}
	if msg := form.Message(); msg != "" {
		style := m.styles.Info
		switch form.MessageKind() {
		case report.MessageSuccess:
			style = m.styles.Success
		case report.MessageError:
			style = m.styles.Error
		}
		lines = append(lines, "", style.Render(msg))
	}
	lines = append(lines, "", m.styles.Footer.Render(form.Help()))
	return lines
}

func (m *Model) viewContact() []string {
	lines := []string{m.styles.ModalTitle.Render("联系作者"), ""}
	for _, line := range strings.Split(m.contact, "\n") {
		lines = append(lines, m.styles.Info.Render(line))
	}
	lines = append(lines, "", m.styles.Footer.Render("Esc to close."))
	return lines
}

func (m *Model) viewFontPicker() []string {
	lines := []string{m.styles.ModalTitle.Render("选择字体"), ""}
	for i, f := range theme.Fonts() {
		text := f.Name
		if f.Family == m.font.Family {
			text += " ✓"
		}
		if i == m.fontCursor {
			lines = append(lines, m.styles.SelectedItem.Render("› "+text))
			continue
		}
		lines = append(lines, m.styles.Item.Render("  "+text))
	}
	lines = append(lines, "", m.styles.Footer.Render("Enter to apply. Esc to close."))
	return lines
}
