package overview

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
)

func testData() (backend.FinancialData, backend.Portfolio[backend.Holding]) {
	basic := backend.FinancialData{
		backend.CategoryAssets: {
			{Name: "Savings", Value: "LKR 1,000.00", Notes: "HNB", SubNotes: "joint"},
		},
		backend.CategoryLiability: {
			{Name: "Car Loan", Value: "LKR-400.00"},
		},
		backend.CategoryOther: {
			{Name: "Net Worth", Value: "LKR 600.00"},
		},
	}
	holdings := backend.Portfolio[backend.Holding]{
		"personal": {
			{StockSymbol: "JKH.N0000", NumberOfShares: "10", CurrentValue: "LKR 2,000.00", GainLoss: "LKR-50.00"},
		},
		"dads": {
			{StockSymbol: "COMB.N0000", NumberOfShares: "5", CurrentValue: "LKR 500.00", GainLoss: "LKR 25.00"},
		},
		"empty": {},
	}
	return basic, holdings
}

func TestNewShowsPlaceholder(t *testing.T) {
	m := New()
	m.SetSize(200, 60)
	m.UpdateViewport()
	be.In(t, "No financial data yet.", m.View())
}

func TestCardsShowValues(t *testing.T) {
	m := New(WithHidden(false), WithOwners("personal", "dads"))
	m.SetSize(400, 80)
	m.SetData(testData())

	view := m.View()
	be.In(t, "Assets", view)
	be.In(t, "Liabilities", view)
	be.In(t, "Net Worth", view)
	be.In(t, "HNB (joint)", view)
	be.In(t, "LKR 1,000.00", view)
	be.In(t, "Personal Holdings", view)
	be.In(t, "Dads Holdings", view)
	be.In(t, "JKH", view)
	be.NotIn(t, "JKH.N0000", view)
	be.NotIn(t, "Empty Holdings", view)
	be.NotIn(t, currency.HiddenPlaceholder, view)
}

func TestOwnersFollowConfiguredOrder(t *testing.T) {
	m := New(WithHidden(false), WithOwners("dads", "personal"))
	m.SetSize(400, 80)
	m.SetData(testData())

	view := m.View()
	be.True(t, strings.Index(view, "Dads Holdings") < strings.Index(view, "Personal Holdings"))
}

func TestHiddenMasksEveryValue(t *testing.T) {
	m := New(WithOwners("personal", "dads"))
	m.SetSize(400, 80)
	m.SetData(testData())

	view := m.View()
	be.In(t, currency.HiddenPlaceholder, view)
	be.NotIn(t, "LKR", view)

	m.SetHidden(false)
	be.In(t, "LKR 2,000.00", m.View())
}

func TestOwnerTitle(t *testing.T) {
	be.Equal(t, "Personal", OwnerTitle("personal"))
	be.Equal(t, "Family Trust", OwnerTitle("family_trust"))
}
