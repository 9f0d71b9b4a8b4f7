package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/finview/dashboard"
)

const confirmKey = "confirm"

func newConfirmTriggerForm(kind dashboard.TriggerKind) *huh.Form {
	title := "Update stock prices?"
	description := "The backend will fetch the latest CSE prices and recompute holdings. This can take a minute."
	if kind == dashboard.ValuationRefresh {
		title = "Update CAL values?"
		description = "The backend will recompute the CAL unit trust valuations. This can take a minute."
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Update").
			Negative("Cancel").
			Key(confirmKey),
	)).WithShowHelp(false)
}

// askTrigger opens the confirmation dialog for kind, unless it is already
// running.
func (m *model) askTrigger(kind dashboard.TriggerKind) tea.Cmd {
	if m.state.Busy(kind) {
		m.statusMsg = "Already updating " + kind.String() + "."
		return nil
	}

	m.previousSessionState = m.sessionState
	m.sessionState = confirmTrigger
	m.pendingTrigger = kind
	m.confirmForm = newConfirmTriggerForm(kind)
	if m.width > 0 {
		m.confirmForm = m.confirmForm.WithWidth(m.width)
	}

	return m.confirmForm.Init()
}

// finishConfirm closes the dialog and starts the trigger when confirmed.
func (m *model) finishConfirm(confirmed bool) tea.Cmd {
	kind := m.pendingTrigger
	m.pendingTrigger = 0
	m.confirmForm = nil
	m.sessionState = dashboardView

	if !confirmed {
		log.Debug("update canceled", "kind", kind)
		return nil
	}

	return m.startTrigger(kind)
}

func updateConfirmTrigger(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmForm = f
	}

	switch m.confirmForm.State {
	case huh.StateCompleted:
		return *m, m.finishConfirm(m.confirmForm.GetBool(confirmKey))
	case huh.StateAborted:
		return *m, m.finishConfirm(false)
	}

	return *m, cmd
}
