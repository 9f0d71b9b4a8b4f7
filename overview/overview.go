package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
)

var titleCaser = cases.Title(language.English)

// Model is the overview tab: category cards, net worth and the holdings
// of every owner.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	basic    backend.FinancialData
	holdings backend.Portfolio[backend.Holding]
	owners   []string
	hidden   bool
}

type Styles struct {
	GainStyle     lipgloss.Style
	LossStyle     lipgloss.Style
	TreeRootStyle lipgloss.Style
	CategoryStyle lipgloss.Style
	CardStyle     lipgloss.Style
	HeaderStyle   lipgloss.Style
	MutedStyle    lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		GainStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		LossStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		TreeRootStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		CategoryStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
		CardStyle:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		HeaderStyle:   lipgloss.NewStyle().Bold(true),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
	}
}

type Option func(*Model)

// WithOwners sets the preferred display order of holdings owners.
func WithOwners(owners ...string) Option {
	return func(m *Model) {
		m.owners = owners
	}
}

// WithHidden sets whether money values start masked.
func WithHidden(hidden bool) Option {
	return func(m *Model) {
		m.hidden = hidden
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		hidden:   true,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetData replaces the basic info and holdings.
func (m *Model) SetData(basic backend.FinancialData, holdings backend.Portfolio[backend.Holding]) {
	m.basic = basic
	m.holdings = holdings
	m.UpdateViewport()
}

// SetHidden masks or reveals money values.
func (m *Model) SetHidden(hidden bool) {
	m.hidden = hidden
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m *Model) UpdateViewport() {
	cards := make([]string, 0, 4)
	for _, c := range aggregate.Categories(m.basic) {
		cards = append(cards, m.categoryCard(c))
	}
	if nw := m.netWorthCard(); nw != "" {
		cards = append(cards, nw)
	}

	var holdings []string
	for _, owner := range m.holdings.Owners(m.owners...) {
		if rows := m.holdings[owner]; len(rows) > 0 {
			holdings = append(holdings, m.holdingsCard(owner, rows))
		}
	}

	if len(cards) == 0 && len(holdings) == 0 {
		m.Viewport.SetContent(m.Styles.MutedStyle.Render("No financial data yet."))
		return
	}

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards...),
			lipgloss.JoinHorizontal(lipgloss.Top, holdings...),
		),
	)
}

func (m Model) money(d decimal.Decimal) string {
	return currency.Mask(m.hidden, currency.Format(d))
}

func (m Model) signed(d decimal.Decimal) string {
	text := m.money(d)
	if m.hidden {
		return text
	}
	if d.IsNegative() {
		return m.Styles.LossStyle.Render(text)
	}
	return m.Styles.GainStyle.Render(text)
}

func (m Model) categoryCard(c aggregate.Card) string {
	rows := make([]table.Row, 0, len(c.Items)+1)
	for _, item := range c.Items {
		notes := item.Notes
		if item.SubNotes != "" {
			notes = fmt.Sprintf("%s (%s)", notes, item.SubNotes)
		}
		rows = append(rows, table.Row{item.Name, notes, m.money(item.Value.Value())})
	}
	rows = append(rows, table.Row{"Total", "", m.money(c.Total)})

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 22},
			{Title: "Notes", Width: 24},
			{Title: "Value", Width: 18},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	return m.Styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.HeaderStyle.Render(c.Title),
			t.View(),
		),
	)
}

// netWorthCard shows the backend's net worth above a tree of category
// totals.
func (m Model) netWorthCard() string {
	value, ok := aggregate.NetWorth(m.basic)
	if !ok {
		return ""
	}

	breakdown := tree.New().Root(m.Styles.TreeRootStyle.Render("Categories"))
	for _, c := range aggregate.Categories(m.basic) {
		breakdown.Child(fmt.Sprintf("%s %s", m.Styles.CategoryStyle.Render(c.Title), m.money(c.Total)))
	}

	return m.Styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.HeaderStyle.Render("Net Worth"),
			m.signed(value.Value()),
			"",
			breakdown.String(),
		),
	)
}

func (m Model) holdingsCard(owner string, rows []backend.Holding) string {
	tableRows := make([]table.Row, 0, len(rows)+1)
	for _, h := range rows {
		tableRows = append(tableRows, table.Row{
			aggregate.Symbol(h.StockSymbol),
			h.NumberOfShares.String(),
			m.money(h.CurrentValue.Value()),
			m.money(h.GainLoss.Value()),
		})
	}

	totals := aggregate.Holdings(rows)
	tableRows = append(tableRows, table.Row{"Total", "", m.money(totals.TotalValue), m.money(totals.TotalGainLoss)})

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Symbol", Width: 10},
			{Title: "Shares", Width: 10},
			{Title: "Value", Width: 18},
			{Title: "Gain/Loss", Width: 18},
		}),
		table.WithRows(tableRows),
		table.WithHeight(len(tableRows)+1),
	)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Value: %s\n", m.money(totals.TotalValue)))
	b.WriteString(fmt.Sprintf("Gain/Loss: %s", m.signed(totals.TotalGainLoss)))

	return m.Styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.HeaderStyle.Render(OwnerTitle(owner)+" Holdings"),
			t.View(),
			b.String(),
		),
	)
}

// OwnerTitle renders an owner key for display: "dads" becomes "Dads".
func OwnerTitle(owner string) string {
	return titleCaser.String(strings.ReplaceAll(owner, "_", " "))
}
