package aggregate

import (
	"testing"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
	"github.com/carlmjohnson/be"
)

func TestHoldings(t *testing.T) {
	tests := []struct {
		name      string
		rows      []backend.Holding
		wantValue string
		wantGain  string
	}{
		{
			name:      "empty",
			wantValue: "0.00",
			wantGain:  "0.00",
		},
		{
			name: "negative gain after currency code",
			rows: []backend.Holding{
				{CurrentValue: "LKR 1,000.00", GainLoss: "LKR 100.00"},
				{CurrentValue: "LKR 2,000.00", GainLoss: "LKR-50.00"},
			},
			wantValue: "3000.00",
			wantGain:  "50.00",
		},
		{
			name: "duplicate symbols are not merged",
			rows: []backend.Holding{
				{StockSymbol: "JKH.N0000", CurrentValue: "LKR 10.00"},
				{StockSymbol: "JKH.N0000", CurrentValue: "LKR 10.00"},
			},
			wantValue: "20.00",
			wantGain:  "0.00",
		},
		{
			name: "malformed values count as zero",
			rows: []backend.Holding{
				{CurrentValue: "n/a", GainLoss: ""},
				{CurrentValue: "LKR 5.00", GainLoss: "LKR 1.00"},
			},
			wantValue: "5.00",
			wantGain:  "1.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Holdings(tt.rows)
			be.Equal(t, tt.wantValue, got.TotalValue.StringFixed(2))
			be.Equal(t, tt.wantGain, got.TotalGainLoss.StringFixed(2))
		})
	}
}

func TestHoldingsLiveRows(t *testing.T) {
	rows := []backend.LiveHolding{
		{Holding: backend.Holding{CurrentValue: "LKR 1,500.00", GainLoss: "LKR-500.00"}},
		{Holding: backend.Holding{CurrentValue: "LKR 500.00", GainLoss: "LKR 200.00"}},
	}

	got := Holdings(rows)
	be.Equal(t, "2000.00", got.TotalValue.StringFixed(2))
	be.Equal(t, "-300.00", got.TotalGainLoss.StringFixed(2))
}

func TestBudget(t *testing.T) {
	tests := []struct {
		name        string
		entries     []backend.BudgetEntry
		wantIncome  string
		wantExpense string
		wantNet     string
		wantBudget  string
		wantPct     float64
	}{
		{
			name:        "empty",
			wantIncome:  "0.00",
			wantExpense: "0.00",
			wantNet:     "0.00",
			wantBudget:  "0.00",
		},
		{
			name: "budget and one expense",
			entries: []backend.BudgetEntry{
				{Category: "Budget", Amount: "10,000.00"},
				{Category: "Food", Amount: "-2,000.00"},
			},
			wantIncome:  "10000.00",
			wantExpense: "-2000.00",
			wantNet:     "8000.00",
			wantBudget:  "10000.00",
			wantPct:     20,
		},
		{
			name: "overspend clamps to one hundred",
			entries: []backend.BudgetEntry{
				{Category: "budget", Amount: "1,000.00"},
				{Category: "Rent", Amount: "-2,000.00"},
			},
			wantIncome:  "1000.00",
			wantExpense: "-2000.00",
			wantNet:     "-1000.00",
			wantBudget:  "1000.00",
			wantPct:     100,
		},
		{
			name: "no budget entry",
			entries: []backend.BudgetEntry{
				{Category: "Salary", Amount: "5,000.00"},
				{Category: "Fuel", Amount: "-700.00"},
			},
			wantIncome:  "5000.00",
			wantExpense: "-700.00",
			wantNet:     "4300.00",
			wantBudget:  "0.00",
		},
		{
			name: "zero and malformed amounts are expenses of zero",
			entries: []backend.BudgetEntry{
				{Category: "BUDGET", Amount: "400"},
				{Category: "Misc", Amount: "0"},
				{Category: "Gift", Amount: "???"},
				{Category: "Food", Amount: "-100"},
			},
			wantIncome:  "400.00",
			wantExpense: "-100.00",
			wantNet:     "300.00",
			wantBudget:  "400.00",
			wantPct:     25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Budget(tt.entries)
			be.Equal(t, tt.wantIncome, got.TotalIncome.StringFixed(2))
			be.Equal(t, tt.wantExpense, got.TotalExpenses.StringFixed(2))
			be.Equal(t, tt.wantNet, got.NetBalance.StringFixed(2))
			be.Equal(t, tt.wantBudget, got.BudgetTotal.StringFixed(2))
			be.Equal(t, tt.wantPct, got.SpentPercentage)
		})
	}
}

func TestBudgetNetIsIncomePlusExpenses(t *testing.T) {
	entries := []backend.BudgetEntry{
		{Category: "Budget", Amount: "LKR 50,000.00"},
		{Category: "Salary", Amount: "LKR 120,000.00"},
		{Category: "Rent", Amount: "LKR-45,000.00"},
		{Category: "Food", Amount: "LKR-12,345.67"},
	}

	got := Budget(entries)
	be.True(t, got.NetBalance.Equal(got.TotalIncome.Add(got.TotalExpenses)))
	be.True(t, got.SpentPercentage >= 0 && got.SpentPercentage <= 100)
}

func TestIsExpense(t *testing.T) {
	be.True(t, IsExpense(backend.BudgetEntry{Amount: "-1"}))
	be.False(t, IsExpense(backend.BudgetEntry{Amount: "0"}))
	be.False(t, IsExpense(backend.BudgetEntry{Amount: "LKR 10.00"}))
}

func TestCategory(t *testing.T) {
	items := []backend.FinancialItem{
		{Name: "Savings", Value: "LKR 1,000.00"},
		{Name: "FD", Value: "LKR 2,500.50"},
		{Name: "Broken", Value: "--"},
	}
	be.Equal(t, "3500.50", Category(items).StringFixed(2))
	be.Equal(t, "0.00", Category(nil).StringFixed(2))
}

func TestNetWorth(t *testing.T) {
	data := backend.FinancialData{
		backend.CategoryOther: {
			{Name: "Total Assets", Value: "LKR 10.00"},
			{Name: "Net Worth", Value: "LKR 7.00"},
		},
	}

	got, ok := NetWorth(data)
	be.True(t, ok)
	be.Equal(t, currency.Amount("LKR 7.00"), got)

	_, ok = NetWorth(backend.FinancialData{})
	be.False(t, ok)
}

func TestCategories(t *testing.T) {
	data := backend.FinancialData{
		backend.CategoryLiability: {{Name: "Loan", Value: "LKR-300.00"}},
		backend.CategoryAssets:    {{Name: "Cash", Value: "LKR 100.00"}},
		backend.CategoryOther:     {{Name: "Net Worth", Value: "LKR-200.00"}},
	}

	cards := Categories(data)
	be.Equal(t, 2, len(cards))
	be.Equal(t, "Assets", cards[0].Title)
	be.Equal(t, "Liabilities", cards[1].Title)
	be.Equal(t, "-300.00", cards[1].Total.StringFixed(2))
}

func TestRowDerivations(t *testing.T) {
	be.Equal(t, "JKH", Symbol("JKH.N0000"))
	be.Equal(t, "COMB", Symbol("COMB"))

	cps, ok := CostPerShare(backend.Holding{ActualCost: "LKR 1,000.00", NumberOfShares: "8"})
	be.True(t, ok)
	be.Equal(t, "125.00", cps.StringFixed(2))

	_, ok = CostPerShare(backend.Holding{ActualCost: "LKR 1,000.00", NumberOfShares: "0"})
	be.False(t, ok)

	be.Equal(t, Gain, Trend("+1.50"))
	be.Equal(t, Loss, Trend("-0.25"))
	be.Equal(t, Flat, Trend("0.00"))
}
