package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/finview/currency"
	"github.com/Rshep3087/finview/dashboard"
)

// Message types for backend responses.
type (
	loadedMsg struct {
		ticket   dashboard.Ticket
		snapshot dashboard.Snapshot
	}

	loadFailedMsg struct {
		ticket dashboard.Ticket
		err    error
	}

	triggerDoneMsg struct {
		kind dashboard.TriggerKind
		err  error
	}
)

// startLoad begins a Load-all. trigger is the recompute that caused it,
// zero for a plain refresh.
func (m model) startLoad(trigger dashboard.TriggerKind) tea.Cmd {
	ticket := m.state.BeginLoad(context.Background(), trigger)
	log.Debug("loading financial data", "generation", ticket.Generation, "trigger", trigger)

	return tea.Batch(m.loadingSpinner.Tick, loadCmd(m.backend, ticket))
}

func loadCmd(f dashboard.Fetcher, ticket dashboard.Ticket) tea.Cmd {
	return func() tea.Msg {
		snap, err := dashboard.LoadAll(ticket.Context(), f)
		if err != nil {
			return loadFailedMsg{ticket: ticket, err: err}
		}
		return loadedMsg{ticket: ticket, snapshot: snap}
	}
}

// startTrigger sends the recompute request for kind. A reload follows once
// the backend accepts it.
func (m model) startTrigger(kind dashboard.TriggerKind) tea.Cmd {
	if err := m.state.BeginTrigger(kind); err != nil {
		log.Debug("trigger rejected", "kind", kind, "error", err)
		return nil
	}

	log.Info("requesting backend update", "kind", kind)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), triggerTimeout)
		defer cancel()

		err := dashboard.RunTrigger(ctx, m.backend, kind)
		return triggerDoneMsg{kind: kind, err: err}
	}
}

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	h, v := m.styles.docStyle.GetFrameSize()

	// title, tabs, status line and help
	takenHeight := 7
	width := msg.Width - h
	height := msg.Height - v - takenHeight

	m.overview.SetSize(width, height)
	m.live.SetSize(width, height)
	m.budget.SetSize(width, height)
	m.configView.SetSize(width, height)
	m.insightViewport.Width = width
	m.insightViewport.Height = height

	m.help.Width = msg.Width

	if m.confirmForm != nil {
		m.confirmForm = m.confirmForm.WithWidth(width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.state.Loading && !m.insightLoading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if !m.state.Apply(msg.ticket, msg.snapshot) {
		log.Debug("discarding stale load", "generation", msg.ticket.Generation, "current", m.state.Generation())
		return m, nil
	}

	log.Info("financial data loaded",
		"generation", msg.ticket.Generation,
		"holdings", msg.snapshot.Holdings.Len(),
		"live_holdings", msg.snapshot.LiveHoldings.Len(),
		"budget_entries", len(msg.snapshot.Budget),
	)
	for _, mismatch := range m.state.Mismatches {
		log.Warn("shadow field disagrees with display value", "detail", mismatch.String())
	}
	if n := currency.Invalid(); n > 0 {
		log.Debug("amounts degraded to zero so far", "count", n)
	}

	return m, m.syncData()
}

func (m model) handleLoadFailed(msg loadFailedMsg) (tea.Model, tea.Cmd) {
	if !m.state.Fail(msg.ticket, msg.err) {
		log.Debug("discarding stale failure", "generation", msg.ticket.Generation, "error", msg.err)
		return m, nil
	}

	log.Error("failed to load financial data", "error", msg.err)
	return m, nil
}

func (m model) handleTriggerDone(msg triggerDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("backend update failed", "kind", msg.kind, "error", msg.err)
		m.state.FailTrigger(msg.kind, msg.err)
		return m, nil
	}

	log.Info("backend update accepted, reloading", "kind", msg.kind)
	return m, m.startLoad(msg.kind)
}

func (m model) handleInsight(msg insightMsg) (tea.Model, tea.Cmd) {
	m.insightLoading = false

	if msg.err != nil {
		content := m.styles.errorStyle.Render("Could not generate insights: " + msg.err.Error())
		if errors.Is(msg.err, context.DeadlineExceeded) {
			content = m.styles.errorStyle.Render("Insight request timed out. Please try again.")
		}
		m.insightViewport.SetContent(content)
		return m, nil
	}

	m.insightViewport.SetContent(renderMarkdown(msg.text, m.insightViewport.Width))
	m.insightViewport.GotoTop()
	return m, nil
}

// renderMarkdown renders md for the terminal, falling back to the raw
// text when glamour cannot.
func renderMarkdown(md string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		log.Debug("markdown renderer unavailable", "error", err)
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		log.Debug("markdown render failed", "error", err)
		return md
	}
	return out
}

// syncData pushes the current datasets into the tab components.
func (m *model) syncData() tea.Cmd {
	data := m.state.Data

	m.overview.SetData(data.Basic, data.Holdings)
	m.live.SetPortfolio(data.LiveHoldings, m.owners...)
	m.live.SetMismatches(len(m.state.Mismatches))
	m.live.SetFocus(m.state.ActiveTab == dashboard.LiveHoldings)

	return m.budget.SetEntries(data.Budget)
}

// syncHidden pushes the visibility flag into the tab components.
func (m *model) syncHidden() tea.Cmd {
	hidden := m.state.ValuesHidden

	m.overview.SetHidden(hidden)
	m.live.SetHidden(hidden)

	return m.budget.SetHidden(hidden)
}
