package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/finview/dashboard"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")

	switch m.sessionState {
	case confirmTrigger:
		if m.confirmForm != nil {
			b.WriteString(m.styles.panelStyle.Render(m.confirmForm.View()))
		}
	case configView:
		b.WriteString(m.configView.View())
	case insightView:
		b.WriteString(m.insightView())
	default:
		b.WriteString(m.renderTabs())
		b.WriteString("\n\n")
		b.WriteString(m.dashboardView())
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.warningStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	return m.styles.titleStyle.Render(fmt.Sprintf("finview | %s", m.sessionState.String()))
}

// renderStatusLine shows when data was last loaded, whether values are
// hidden and which updates are running.
func (m model) renderStatusLine() string {
	parts := []string{"Last updated: " + m.lastUpdated()}

	if m.state.ValuesHidden {
		parts = append(parts, "values hidden (v to show)")
	}

	for _, kind := range dashboard.TriggerKinds() {
		if m.state.Busy(kind) {
			parts = append(parts, fmt.Sprintf("%s updating %s...", m.loadingSpinner.View(), kind))
		}
	}

	if m.state.Loading && m.state.HasData() {
		parts = append(parts, m.loadingSpinner.View()+" refreshing")
	}

	return m.styles.mutedStyle.Render(strings.Join(parts, " | "))
}

func (m model) lastUpdated() string {
	if !m.state.HasData() {
		return "never"
	}
	return m.state.LastUpdated.Format(lastUpdatedLayout)
}

func (m model) renderTabs() string {
	tabs := make([]string, 0, len(dashboard.Tabs()))
	for _, t := range dashboard.Tabs() {
		style := m.styles.tabStyle
		if t == m.state.ActiveTab {
			style = m.styles.activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) dashboardView() string {
	// the error panel replaces the tab content until a retry succeeds
	if m.state.Err != "" {
		return m.styles.panelStyle.Render(m.styles.errorStyle.Render(m.state.Err + " (press r to retry)"))
	}

	// first load: nothing to show behind the spinner
	if m.state.Loading && !m.state.HasData() {
		return fmt.Sprintf("%s Loading financial data...", m.loadingSpinner.View())
	}

	switch m.state.ActiveTab {
	case dashboard.LiveHoldings:
		return m.live.View()
	case dashboard.MonthlyBudget:
		return m.budget.View()
	default:
		return m.overview.View()
	}
}

func (m model) insightView() string {
	if m.insightLoading {
		return fmt.Sprintf("%s Asking for insights...", m.loadingSpinner.View())
	}
	return m.insightViewport.View()
}
