package budget

import (
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
)

var testColors = Colors{Primary: "#ff0000", Income: "#00ff00", Expense: "#ff0000"}

func testEntries() []backend.BudgetEntry {
	return []backend.BudgetEntry{
		{Category: "Budget", Amount: "10,000.00"},
		{Category: "Food", Amount: "-2,000.00", Account: "HNB", IsCompleted: true},
		{Category: "Salary", Amount: "5,000.00", Account: "Sampath"},
	}
}

func TestSetEntries(t *testing.T) {
	m := New(testColors)
	m.SetEntries(testEntries())

	s := m.Summary()
	be.Equal(t, "15000.00", s.TotalIncome.StringFixed(2))
	be.Equal(t, "-2000.00", s.TotalExpenses.StringFixed(2))
	be.Equal(t, "13000.00", s.NetBalance.StringFixed(2))
	be.Equal(t, 20.0, s.SpentPercentage)
	be.Equal(t, 3, len(m.list.Items()))
}

func TestViewShowsValues(t *testing.T) {
	m := New(testColors)
	m.SetSize(120, 40)
	m.SetEntries(testEntries())
	m.SetHidden(false)

	view := m.View()
	be.In(t, "Total Income", view)
	be.In(t, "LKR 15,000.00", view)
	be.In(t, "Spent LKR 2,000.00 of LKR 10,000.00", view)
	be.In(t, "20%", view)
}

func TestViewHidden(t *testing.T) {
	m := New(testColors)
	m.SetSize(120, 40)
	m.SetEntries(testEntries())

	view := m.View()
	be.In(t, currency.HiddenPlaceholder, view)
	be.NotIn(t, "LKR", view)
	be.In(t, "0%", view)
}

func TestEntryItem(t *testing.T) {
	tests := []struct {
		name      string
		item      entryItem
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "expense",
			item:      entryItem{entry: backend.BudgetEntry{Category: "Food", Amount: "-2,000.00", Account: "HNB", IsCompleted: true}},
			wantTitle: "▼ Food  -LKR 2,000.00",
			wantDesc:  "Account: HNB | ✓ completed",
		},
		{
			name:      "budget sentinel",
			item:      entryItem{entry: backend.BudgetEntry{Category: "budget", Amount: "100"}},
			wantTitle: "◆ budget  LKR 100.00",
			wantDesc:  "pending",
		},
		{
			name:      "hidden income",
			item:      entryItem{entry: backend.BudgetEntry{Category: "Salary", Amount: "5"}, hidden: true},
			wantTitle: "▲ Salary  " + currency.HiddenPlaceholder,
			wantDesc:  "pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.wantTitle, tt.item.Title())
			be.Equal(t, tt.wantDesc, tt.item.Description())
			be.Equal(t, tt.item.entry.Category, tt.item.FilterValue())
		})
	}
}
