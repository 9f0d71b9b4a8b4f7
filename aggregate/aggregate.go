// Package aggregate derives totals from backend line items. Every value is
// read through the currency parser, so malformed amounts count as zero.
package aggregate

import (
	"math"
	"strings"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Valued is a row that carries a brokerage position.
type Valued interface {
	Position() backend.Holding
}

// HoldingsTotals sums one owner's holdings.
type HoldingsTotals struct {
	TotalValue    decimal.Decimal
	TotalGainLoss decimal.Decimal
}

// Holdings totals current value and gain/loss. Rows sharing a symbol are
// counted separately.
func Holdings[T Valued](rows []T) HoldingsTotals {
	var totals HoldingsTotals
	for _, row := range rows {
		h := row.Position()
		totals.TotalValue = totals.TotalValue.Add(h.CurrentValue.Value())
		totals.TotalGainLoss = totals.TotalGainLoss.Add(h.GainLoss.Value())
	}
	return totals
}

// BudgetSummary is the month at a glance.
type BudgetSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
	BudgetTotal   decimal.Decimal
	// SpentPercentage is in [0, 100].
	SpentPercentage float64
}

// IsBudgetSentinel reports whether e carries the month's budget ceiling.
func IsBudgetSentinel(e backend.BudgetEntry) bool {
	return strings.EqualFold(e.Category, "budget")
}

// IsExpense reports whether e is drawn as an expense.
func IsExpense(e backend.BudgetEntry) bool {
	return e.Amount.Value().IsNegative()
}

// Budget summarises the month's entries. The sentinel entry counts both
// towards the ceiling and as income.
func Budget(entries []backend.BudgetEntry) BudgetSummary {
	var s BudgetSummary

	for _, e := range entries {
		amount := e.Amount.Value()
		switch {
		case IsBudgetSentinel(e):
			s.BudgetTotal = s.BudgetTotal.Add(amount)
			s.TotalIncome = s.TotalIncome.Add(amount)
		case amount.IsPositive():
			s.TotalIncome = s.TotalIncome.Add(amount)
		default:
			s.TotalExpenses = s.TotalExpenses.Add(amount)
		}
	}

	s.NetBalance = s.TotalIncome.Add(s.TotalExpenses)

	if s.BudgetTotal.IsPositive() {
		pct, _ := s.TotalExpenses.Abs().Div(s.BudgetTotal).Mul(hundred).Float64()
		s.SpentPercentage = math.Min(math.Max(pct, 0), 100)
	}

	return s
}

// Category sums the values of one financial category.
func Category(items []backend.FinancialItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value.Value())
	}
	return total
}

const netWorthName = "Net Worth"

// NetWorth returns the backend's net worth line, if present.
func NetWorth(data backend.FinancialData) (currency.Amount, bool) {
	for _, item := range data[backend.CategoryOther] {
		if item.Name == netWorthName {
			return item.Value, true
		}
	}
	return "", false
}

// Card is one financial category ready to render.
type Card struct {
	Title    string
	Category backend.Category
	Items    []backend.FinancialItem
	Total    decimal.Decimal
}

var cardOrder = []struct {
	category backend.Category
	title    string
}{
	{backend.CategoryAssets, "Assets"},
	{backend.CategoryNonCurrentAssets, "Non Current Assets"},
	{backend.CategoryLiability, "Liabilities"},
}

// Categories returns the cards for the non-empty categories, in display order.
func Categories(data backend.FinancialData) []Card {
	cards := make([]Card, 0, len(cardOrder))
	for _, c := range cardOrder {
		items := data[c.category]
		if len(items) == 0 {
			continue
		}
		cards = append(cards, Card{
			Title:    c.title,
			Category: c.category,
			Items:    items,
			Total:    Category(items),
		})
	}
	return cards
}
