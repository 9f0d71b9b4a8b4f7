// Package budget renders the monthly budget tab.
package budget

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
)

const progressWidth = 40

// Colors are the colors the tab is drawn with.
type Colors struct {
	Primary string
	Income  string
	Expense string
}

// Model is the monthly budget tab.
type Model struct {
	colors   Colors
	entries  []backend.BudgetEntry
	summary  aggregate.BudgetSummary
	hidden   bool
	list     list.Model
	progress progress.Model
	width    int
}

// New returns an empty tab with values hidden.
func New(colors Colors) Model {
	return Model{
		colors:   colors,
		hidden:   true,
		list:     newEntryList(newDelegate(colors)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

func newEntryList(delegate list.DefaultDelegate) list.Model {
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetStatusBarItemName("entry", "entries")
	l.StatusMessageLifetime = 3 * time.Second
	return l
}

func newDelegate(colors Colors) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: colors.Primary, Dark: colors.Primary}).
		Foreground(lipgloss.AdaptiveColor{Light: colors.Primary, Dark: colors.Primary}).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: colors.Primary, Dark: colors.Primary}).
		Foreground(lipgloss.AdaptiveColor{Light: colors.Primary, Dark: colors.Primary}).
		Padding(0, 0, 0, 1)

	return d
}

// SetEntries replaces the month's entries and recomputes the summary.
func (m *Model) SetEntries(entries []backend.BudgetEntry) tea.Cmd {
	m.entries = entries
	m.summary = aggregate.Budget(entries)
	return m.refreshItems()
}

// SetHidden masks or reveals money values.
func (m *Model) SetHidden(hidden bool) tea.Cmd {
	m.hidden = hidden
	return m.refreshItems()
}

// Summary returns the aggregate of the current entries.
func (m Model) Summary() aggregate.BudgetSummary {
	return m.summary
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	// summary cards and the progress block sit above the list
	m.list.SetSize(width, max(height-10, 3))
}

func (m *Model) refreshItems() tea.Cmd {
	items := make([]list.Item, 0, len(m.entries))
	for _, e := range m.entries {
		items = append(items, entryItem{entry: e, hidden: m.hidden})
	}
	return m.list.SetItems(items)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.summaryView(),
		m.progressView(),
		m.list.View(),
	)
}

func (m Model) money(d decimal.Decimal) string {
	return currency.Mask(m.hidden, currency.Format(d))
}

func (m Model) summaryView() string {
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	income := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Income))
	expense := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Expense))

	net := income
	if m.summary.NetBalance.IsNegative() {
		net = expense
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render("Total Income\n"+income.Render(m.money(m.summary.TotalIncome))),
		card.Render("Total Expenses\n"+expense.Render(m.money(m.summary.TotalExpenses))),
		card.Render("Net Balance\n"+net.Render(m.money(m.summary.NetBalance))),
	)
}

// progressView draws the spent share of the budget. It shows an empty bar
// while values are hidden.
func (m Model) progressView() string {
	pct := m.summary.SpentPercentage
	if m.hidden {
		pct = 0
	}

	spent := fmt.Sprintf("Spent %s of %s",
		m.money(m.summary.TotalExpenses.Abs()),
		m.money(m.summary.BudgetTotal),
	)

	return lipgloss.NewStyle().Padding(1, 0).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.progress.ViewAs(pct/100),
			spent,
		),
	)
}

// Filtering reports whether the entry list is capturing keys for its filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
