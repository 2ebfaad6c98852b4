package ui

import (
	"errors"
	"time"

	"github.com/atomicstack/term-glossary/internal/api"
	"github.com/atomicstack/term-glossary/internal/logging"
	"github.com/atomicstack/term-glossary/internal/logging/events"
	"github.com/atomicstack/term-glossary/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var errNoReporter = errors.New("report submission is not configured")

// reportResultMsg carries the outcome of a report submission back to the
// modal that issued it.
type reportResultMsg struct {
	seq int
	err error
}

// reportCloseMsg fires after a successful submission to dismiss the modal.
type reportCloseMsg struct {
	seq int
}

// submitReportCmd posts the report through the command bus. Repeated submits
// each issue their own request.
func (m *Model) submitReportCmd(fields map[string]string) tea.Cmd {
	seq := m.reportSeq
	reporter := m.reporter
	ctx := m.ctx
	return m.bus.Execute(command.Request{
		ID:    "report:" + uuid.NewString(),
		Label: fields["term"],
		Run: func() tea.Msg {
			if reporter == nil {
				return reportResultMsg{seq: seq, err: errNoReporter}
			}
			return reportResultMsg{seq: seq, err: reporter.SubmitReport(ctx, fields)}
		},
	})
}

func (m *Model) handleReportResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(reportResultMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeReport || result.seq != m.reportSeq {
		return nil
	}
	if result.err == nil {
		events.Report.Succeeded()
		m.report.SetSuccess()
		seq := result.seq
		return tea.Tick(m.reportCloseDelay, func(time.Time) tea.Msg {
			return reportCloseMsg{seq: seq}
		})
	}
	logging.Error(result.err)
	events.Report.Failed(result.err)
	if se, ok := api.AsStatusError(result.err); ok {
		m.report.SetFailure(se.Body)
		return nil
	}
	m.report.SetNetworkFailure()
	return nil
}

func (m *Model) handleReportCloseMsg(msg tea.Msg) tea.Cmd {
	closeMsg, ok := msg.(reportCloseMsg)
	if !ok {
		return nil
	}
	if m.mode == ModeReport && closeMsg.seq == m.reportSeq {
		events.Report.Close(events.ReportReasonSuccess)
		m.closeReport()
	}
	return nil
}
