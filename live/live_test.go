package live

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
)

var testColors = Colors{Primary: "#ff0000", Gain: "#00ff00", Loss: "#ff0000", Warning: "#ffaa00"}

func testPortfolio() backend.Portfolio[backend.LiveHolding] {
	return backend.Portfolio[backend.LiveHolding]{
		"personal": {
			{
				Holding: backend.Holding{
					StockSymbol:    "JKH.N0000",
					ActualCost:     "LKR 1,000.00",
					NumberOfShares: "8",
					CurrentValue:   "LKR 1,600.00",
					GainLoss:       "LKR 600.00",
				},
				CompanyName:   "John Keells",
				CurrentPrice:  "LKR 200.00",
				Change:        "1.50",
				VolumeToday:   "12,000",
				DayRange:      "198.00 - 201.00",
				PreviousClose: "LKR 198.50",
			},
			{
				Holding: backend.Holding{
					StockSymbol:  "COMB.N0000",
					CurrentValue: "LKR 400.00",
					GainLoss:     "LKR-100.00",
				},
				CompanyName: "Commercial Bank",
				Change:      "-2.00",
			},
		},
		"dads": {},
	}
}

func TestNew(t *testing.T) {
	m := New(testColors)

	be.Equal(t, 7, len(columns()))
	be.Equal(t, "Symbol", columns()[0].Title)
	be.Equal(t, "Gain/Loss", columns()[6].Title)
	be.Equal(t, emptyMessage, m.View())
}

func TestSetPortfolio(t *testing.T) {
	m := New(testColors)
	m.SetSize(200, 40)
	m.SetHidden(false)
	m.SetPortfolio(testPortfolio(), "personal", "dads")

	be.Equal(t, 2, len(m.sections))
	be.Equal(t, "personal", m.sections[0].owner)
	be.Equal(t, "dads", m.sections[1].owner)

	rows := m.sections[0].table.Rows()
	be.Equal(t, 3, len(rows))
	be.Equal(t, "JKH", rows[0][0])
	be.Equal(t, "▲ +1.50", rows[0][3])
	be.Equal(t, "▼ -2.00", rows[1][3])
	be.Equal(t, "Total", rows[2][0])
	be.Equal(t, "LKR 2,000.00", rows[2][5])
	be.Equal(t, "LKR 500.00", rows[2][6])

	view := m.View()
	be.In(t, "Personal Holdings", view)
	be.In(t, "Dads Holdings", view)
	be.In(t, emptyMessage, view)
}

func TestHiddenMasksRows(t *testing.T) {
	m := New(testColors)
	m.SetPortfolio(testPortfolio(), "personal")

	rows := m.sections[0].table.Rows()
	be.Equal(t, currency.HiddenPlaceholder, rows[0][2])
	be.Equal(t, currency.HiddenPlaceholder, rows[2][5])
}

func TestDetailToggle(t *testing.T) {
	m := New(testColors)
	m.SetSize(200, 40)
	m.SetHidden(false)
	m.SetPortfolio(testPortfolio(), "personal")
	m.SetFocus(true)

	h, ok := m.Selected()
	be.True(t, ok)
	be.Equal(t, "JKH.N0000", h.StockSymbol)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	be.In(t, "Cost per share:  LKR 125.00", view)
	be.In(t, "198.00 - 201.00", view)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	be.NotIn(t, "Cost per share", m.View())
}

func TestSwitchOwner(t *testing.T) {
	m := New(testColors)
	m.SetPortfolio(testPortfolio(), "personal", "dads")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	be.Equal(t, 1, m.active)
	_, ok := m.Selected()
	be.False(t, ok)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	be.Equal(t, 0, m.active)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	be.Equal(t, 1, m.active)
}

func TestMismatchWarning(t *testing.T) {
	m := New(testColors)
	m.SetPortfolio(testPortfolio())
	m.SetMismatches(2)

	be.True(t, strings.Contains(m.View(), "2 value(s) disagree"))
}
