package backend

import (
	"slices"
	"sort"

	"github.com/Rshep3087/finview/currency"
)

// Category groups FinancialItems in the basic info payload.
type Category string

const (
	CategoryAssets           Category = "Assets"
	CategoryNonCurrentAssets Category = "Non Current Assets"
	CategoryLiability        Category = "Liability"
	CategoryOther            Category = "Other"
)

// FinancialItem is one asset, liability or summary line.
type FinancialItem struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Value    currency.Amount `json:"value"`
	Notes    string          `json:"notes"`
	SubNotes string          `json:"sub_notes"`
	Row      int             `json:"row"`
}

// FinancialData is the basic info payload keyed by category.
type FinancialData map[Category][]FinancialItem

// Holding is a brokerage position as last valued by the backend.
type Holding struct {
	Row            int             `json:"row"`
	StockSymbol    string          `json:"stock_symbol"`
	ActualCost     currency.Amount `json:"actual_cost"`
	NumberOfShares currency.Amount `json:"number_of_shares"`
	PerShareValue  currency.Amount `json:"per_share_value"`
	CurrentValue   currency.Amount `json:"current_value"`
	GainLoss       currency.Amount `json:"gain_loss"`
}

// Position returns the holding itself. LiveHolding inherits it, which lets
// both row types share the holdings totals.
func (h Holding) Position() Holding {
	return h
}

// LiveHolding is a Holding enriched with the latest market quote.
//
// GainLossValue and CurrentPriceValue are numeric copies of GainLoss and
// CurrentPrice. The strings stay canonical; see CheckShadowFields.
type LiveHolding struct {
	Holding

	CompanyName   string          `json:"company_name"`
	CurrentPrice  currency.Amount `json:"current_price"`
	Change        currency.Amount `json:"change"`
	VolumeToday   currency.Amount `json:"volume_today"`
	DayRange      string          `json:"day_range"`
	PreviousClose currency.Amount `json:"previous_close"`

	GainLossValue     *float64 `json:"gain_loss_value,omitempty"`
	CurrentPriceValue *float64 `json:"current_price_value,omitempty"`
}

// BudgetEntry is one line of the monthly budget. The entry whose category
// is "Budget" carries the month's ceiling.
type BudgetEntry struct {
	Category    string          `json:"category"`
	Amount      currency.Amount `json:"amount"`
	Account     string          `json:"account"`
	IsCompleted bool            `json:"isCompleted"`
}

// Portfolio holds rows per owner, e.g. "personal" and "dads".
type Portfolio[T any] map[string][]T

// Owners lists the owners present in p. Owners named in preferred come
// first in that order, the rest follow alphabetically.
func (p Portfolio[T]) Owners(preferred ...string) []string {
	owners := make([]string, 0, len(p))
	for _, name := range preferred {
		if _, ok := p[name]; ok && !slices.Contains(owners, name) {
			owners = append(owners, name)
		}
	}

	rest := make([]string, 0, len(p))
	for name := range p {
		if !slices.Contains(owners, name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(owners, rest...)
}

// Len returns the number of rows across all owners.
func (p Portfolio[T]) Len() int {
	n := 0
	for _, rows := range p {
		n += len(rows)
	}
	return n
}

type companiesResponse[T any] struct {
	Companies Portfolio[T] `json:"companies"`
}

type budgetResponse struct {
	Entries *[]BudgetEntry `json:"monthly_budget_data"`
}
