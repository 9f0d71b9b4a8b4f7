package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rshep3087/finview/dashboard"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := handleKeyPress(msg, &m); handled {
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case loadedMsg:
		return m.handleLoaded(msg)

	case loadFailedMsg:
		return m.handleLoadFailed(msg)

	case triggerDoneMsg:
		return m.handleTriggerDone(msg)

	case insightMsg:
		return m.handleInsight(msg)
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case confirmTrigger:
		return updateConfirmTrigger(msg, &m)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case insightView:
		m.insightViewport, cmd = m.insightViewport.Update(msg)
		return m, cmd

	case dashboardView:
		return m.updateActiveTab(msg)
	}

	return m, nil
}

func (m model) updateActiveTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state.ActiveTab {
	case dashboard.Overview:
		m.overview, cmd = m.overview.Update(msg)
	case dashboard.LiveHoldings:
		m.live, cmd = m.live.Update(msg)
	case dashboard.MonthlyBudget:
		m.budget, cmd = m.budget.Update(msg)
	}
	return m, cmd
}
