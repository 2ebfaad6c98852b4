package ui

import (
	"github.com/atomicstack/term-glossary/internal/backend"
	"github.com/atomicstack/term-glossary/internal/logging"
	"github.com/atomicstack/term-glossary/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// FetchFailed replaces the list when the term fetch fails.
const FetchFailed = "加载术语失败。"

func waitForBackendEvent(l *backend.Loader) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-l.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.loader != nil {
		return waitForBackendEvent(m.loader)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.loader = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	m.loading = false
	m.forceClearInfo()
	res := m.dispatcher.Handle(evt)
	if res.Failed {
		logging.Error(evt.Err)
		m.loadFailed = true
		return
	}
	if !res.TermsUpdated {
		return
	}
	m.loadFailed = false
	m.browser.SetTerms(m.terms.Terms(), m.terms.Categories())
	m.syncViewport()
	events.Filter.Rendered(m.browser.Query, m.browser.Category, len(m.browser.Rows))
}

// searchable reports whether list edits have terms to act on.
func (m *Model) searchable() bool {
	return m.terms.Loaded() && !m.loadFailed
}
