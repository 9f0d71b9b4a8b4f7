// Package live renders the live CSE holdings tab: one table per owner and
// a detail panel for the selected row.
package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
	"github.com/Rshep3087/finview/overview"
)

const emptyMessage = "No live CSE data available."

// Colors are the colors the tab is drawn with.
type Colors struct {
	Primary string
	Gain    string
	Loss    string
	Warning string
}

// KeyMap holds the keys handled by the tab.
type KeyMap struct {
	Detail    key.Binding
	NextOwner key.Binding
	PrevOwner key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		NextOwner: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next owner"),
		),
		PrevOwner: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev owner"),
		),
	}
}

type section struct {
	owner string
	rows  []backend.LiveHolding
	table table.Model
}

// Model is the live holdings tab.
type Model struct {
	Keys KeyMap

	colors     Colors
	tableStyle table.Styles
	sections   []section
	active     int
	focused    bool
	hidden     bool
	detail     bool
	mismatches int
	width      int
	height     int
}

// New returns an empty, unfocused tab with values hidden.
func New(colors Colors) Model {
	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	return Model{
		Keys:       defaultKeyMap(),
		colors:     colors,
		tableStyle: tableStyle,
		hidden:     true,
	}
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Symbol", Width: 8},
		{Title: "Company", Width: 24},
		{Title: "Price", Width: 16},
		{Title: "Change", Width: 8},
		{Title: "Volume", Width: 10},
		{Title: "Value", Width: 18},
		{Title: "Gain/Loss", Width: 18},
	}
}

func (m *Model) SetFocus(focus bool) {
	m.focused = focus
	m.syncFocus()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.sections {
		m.sections[i].table.SetWidth(width)
		m.sections[i].table.SetHeight(m.tableHeight(len(m.sections[i].rows)))
	}
}

// SetHidden masks or reveals money values.
func (m *Model) SetHidden(hidden bool) {
	m.hidden = hidden
	m.rebuildRows()
}

// SetMismatches sets how many rows disagree with their numeric copies.
func (m *Model) SetMismatches(n int) {
	m.mismatches = n
}

// SetPortfolio replaces the holdings. Owners are shown in the order given,
// followed by any others.
func (m *Model) SetPortfolio(p backend.Portfolio[backend.LiveHolding], owners ...string) {
	m.sections = m.sections[:0]
	for _, owner := range p.Owners(owners...) {
		t := table.New(table.WithColumns(columns()))
		t.SetStyles(m.tableStyle)
		m.sections = append(m.sections, section{owner: owner, rows: p[owner], table: t})
	}

	if m.active >= len(m.sections) {
		m.active = 0
	}
	m.detail = false
	m.rebuildRows()
	m.SetSize(m.width, m.height)
	m.syncFocus()
}

// Selected returns the holding under the cursor of the active owner.
func (m *Model) Selected() (backend.LiveHolding, bool) {
	if len(m.sections) == 0 {
		return backend.LiveHolding{}, false
	}
	s := m.sections[m.active]
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(s.rows) {
		return backend.LiveHolding{}, false
	}
	return s.rows[cursor], true
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.Keys.Detail):
			m.detail = !m.detail
			return *m, nil
		case key.Matches(msg, m.Keys.NextOwner):
			m.moveOwner(1)
			return *m, nil
		case key.Matches(msg, m.Keys.PrevOwner):
			m.moveOwner(-1)
			return *m, nil
		}
	}

	if len(m.sections) == 0 {
		return *m, nil
	}

	var cmd tea.Cmd
	m.sections[m.active].table, cmd = m.sections[m.active].table.Update(msg)
	return *m, cmd
}

func (m *Model) View() string {
	if len(m.sections) == 0 {
		return emptyMessage
	}

	header := lipgloss.NewStyle().Bold(true)
	activeHeader := header.Foreground(lipgloss.Color(m.colors.Primary))

	parts := make([]string, 0, len(m.sections)*2+2)
	if m.mismatches > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Warning)).Render(
			fmt.Sprintf("⚠ %d value(s) disagree with their numeric copies; showing the backend text.", m.mismatches),
		))
	}

	for i, s := range m.sections {
		title := overview.OwnerTitle(s.owner) + " Holdings"
		if i == m.active {
			parts = append(parts, activeHeader.Render("▸ "+title))
		} else {
			parts = append(parts, header.Render("  "+title))
		}

		if len(s.rows) == 0 {
			parts = append(parts, emptyMessage)
			continue
		}
		parts = append(parts, s.table.View())
	}

	if m.detail {
		if h, ok := m.Selected(); ok {
			parts = append(parts, m.detailView(h))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) moveOwner(delta int) {
	if len(m.sections) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.sections)) % len(m.sections)
	m.detail = false
	m.syncFocus()
}

func (m *Model) syncFocus() {
	for i := range m.sections {
		if m.focused && i == m.active {
			m.sections[i].table.Focus()
		} else {
			m.sections[i].table.Blur()
		}
	}
}

func (m *Model) tableHeight(rows int) int {
	// header plus the total row
	h := rows + 2
	if len(m.sections) > 0 && m.height > 0 {
		if limit := m.height / len(m.sections); h > limit && limit > 2 {
			h = limit - 1
		}
	}
	return h
}

func (m *Model) rebuildRows() {
	for i := range m.sections {
		s := &m.sections[i]
		rows := make([]table.Row, 0, len(s.rows)+1)
		for _, h := range s.rows {
			rows = append(rows, table.Row{
				aggregate.Symbol(h.StockSymbol),
				h.CompanyName,
				m.money(h.CurrentPrice.Value()),
				changeText(h.Change),
				h.VolumeToday.String(),
				m.money(h.CurrentValue.Value()),
				m.money(h.GainLoss.Value()),
			})
		}

		if len(s.rows) > 0 {
			totals := aggregate.Holdings(s.rows)
			rows = append(rows, table.Row{"Total", "", "", "", "", m.money(totals.TotalValue), m.money(totals.TotalGainLoss)})
		}

		s.table.SetRows(rows)
	}
}

func (m *Model) money(d decimal.Decimal) string {
	return currency.Mask(m.hidden, currency.Format(d))
}

func changeText(change currency.Amount) string {
	text := strings.TrimSpace(change.String())
	switch aggregate.Trend(change) {
	case aggregate.Gain:
		if !strings.HasPrefix(text, "+") {
			text = "+" + text
		}
		return "▲ " + text
	case aggregate.Loss:
		return "▼ " + text
	default:
		return text
	}
}

func (m *Model) detailView(h backend.LiveHolding) string {
	costPerShare := "n/a"
	if cps, ok := aggregate.CostPerShare(h.Holding); ok {
		costPerShare = m.money(cps)
	}

	gainStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Gain))
	if h.GainLoss.IsNegative() {
		gainStyle = gainStyle.Foreground(lipgloss.Color(m.colors.Loss))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", h.CompanyName, h.StockSymbol)
	fmt.Fprintf(&b, "Actual cost:     %s\n", m.money(h.ActualCost.Value()))
	fmt.Fprintf(&b, "Shares:          %s\n", h.NumberOfShares)
	fmt.Fprintf(&b, "Cost per share:  %s\n", costPerShare)
	fmt.Fprintf(&b, "Per share value: %s\n", m.money(h.PerShareValue.Value()))
	fmt.Fprintf(&b, "Day range:       %s\n", h.DayRange)
	fmt.Fprintf(&b, "Previous close:  %s\n", m.money(h.PreviousClose.Value()))
	fmt.Fprintf(&b, "Gain/Loss:       %s", gainStyle.Render(m.money(h.GainLoss.Value())))

	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(b.String())
}
