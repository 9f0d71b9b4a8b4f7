package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/finview/dashboard"
)

type keyMap struct {
	refresh       key.Binding
	updatePrices  key.Binding
	updateValues  key.Binding
	toggleValues  key.Binding
	overview      key.Binding
	liveHoldings  key.Binding
	monthlyBudget key.Binding
	nextTab       key.Binding
	prevTab       key.Binding
	insights      key.Binding
	config        key.Binding
	escape        key.Binding
	fullHelp      key.Binding
	quit          key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.nextTab,
		km.refresh,
		km.toggleValues,
		km.updatePrices,
		km.updateValues,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.liveHoldings,
			km.monthlyBudget,
			km.nextTab,
			km.prevTab,
		},
		{
			km.refresh,
			km.updatePrices,
			km.updateValues,
			km.toggleValues,
		},
		{
			km.insights,
			km.config,
			km.escape,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		updatePrices: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "update stock prices"),
		),
		updateValues: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "update CAL values"),
		),
		toggleValues: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show/hide values"),
		),
		overview: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "overview"),
		),
		liveHoldings: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "live CSE holdings"),
		),
		monthlyBudget: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "monthly budget"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		insights: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "AI insights"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// handleKeyPress handles the global keys. handled is false when the key
// belongs to the active view.
func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Cmd, bool) {
	log.Debug("key pressed", "key", msg.String())

	if m.sessionState == confirmTrigger {
		switch {
		case msg.String() == "ctrl+c":
			return tea.Quit, true
		case key.Matches(msg, m.keys.escape):
			return m.finishConfirm(false), true
		}
		return nil, false
	}

	// the budget filter owns the keyboard while typing
	if isInputBlocked(m) {
		return nil, false
	}

	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.escape):
		return handleEscape(m)

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configView
		}
		return nil, true

	case key.Matches(msg, m.keys.insights):
		return m.openInsights(), true

	case key.Matches(msg, m.keys.refresh):
		return m.startLoad(0), true

	case key.Matches(msg, m.keys.toggleValues):
		m.state.ToggleVisibility()
		log.Debug("values visibility toggled", "hidden", m.state.ValuesHidden)
		return m.syncHidden(), true
	}

	if m.sessionState != dashboardView {
		return nil, false
	}

	return handleDashboardKeys(msg, m)
}

func handleDashboardKeys(msg tea.KeyMsg, m *model) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.updatePrices):
		return m.askTrigger(dashboard.PriceRefresh), true

	case key.Matches(msg, m.keys.updateValues):
		return m.askTrigger(dashboard.ValuationRefresh), true

	case key.Matches(msg, m.keys.overview):
		m.selectTab(dashboard.Overview)
		return nil, true

	case key.Matches(msg, m.keys.liveHoldings):
		m.selectTab(dashboard.LiveHoldings)
		return nil, true

	case key.Matches(msg, m.keys.monthlyBudget):
		m.selectTab(dashboard.MonthlyBudget)
		return nil, true

	case key.Matches(msg, m.keys.nextTab):
		m.state.NextTab()
		m.selectTab(m.state.ActiveTab)
		return nil, true

	case key.Matches(msg, m.keys.prevTab):
		m.state.PrevTab()
		m.selectTab(m.state.ActiveTab)
		return nil, true
	}

	return nil, false
}

func isInputBlocked(m *model) bool {
	return m.sessionState == dashboardView &&
		m.state.ActiveTab == dashboard.MonthlyBudget &&
		m.budget.Filtering()
}

func (m *model) selectTab(t dashboard.Tab) {
	if err := m.state.SelectTab(t); err != nil {
		log.Debug("ignoring tab", "tab", t, "error", err)
		return
	}
	m.live.SetFocus(m.state.ActiveTab == dashboard.LiveHoldings)
}

// handleEscape returns to the dashboard from the config and insight views.
func handleEscape(m *model) (tea.Cmd, bool) {
	switch m.sessionState {
	case configView:
		m.configView.SetFocus(false)
		m.previousSessionState = m.sessionState
		m.sessionState = dashboardView
		return nil, true
	case insightView:
		m.previousSessionState = m.sessionState
		m.sessionState = dashboardView
		return nil, true
	}

	return nil, false
}

// openInsights switches to the insight view and requests commentary on the
// loaded data.
func (m *model) openInsights() tea.Cmd {
	m.previousSessionState = m.sessionState
	m.sessionState = insightView

	if !m.insights.IsEnabled() {
		m.insightViewport.SetContent(m.styles.warningStyle.Render(errInsightsDisabled.Error()))
		return nil
	}
	if !m.state.HasData() {
		m.insightViewport.SetContent(m.styles.mutedStyle.Render("Nothing to analyze until financial data has loaded."))
		return nil
	}
	if m.insightLoading {
		return nil
	}

	m.insightLoading = true
	m.insightViewport.SetContent("")
	return tea.Batch(m.loadingSpinner.Tick, m.insights.Generate(m.state.Data, m.owners))
}
