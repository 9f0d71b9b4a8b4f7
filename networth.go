package main

import (
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
)

// NetWorthData represents the net worth summary of the basic info payload.
type NetWorthData struct {
	// NetWorth is the backend's own figure; empty when it sent none
	NetWorth         currency.Amount
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	Cards            []aggregate.Card
}

// NetWorthJSONSummary converts NetWorthData to a JSON-friendly format for CLI output.
type NetWorthJSONSummary struct {
	NetWorth         string                   `json:"net_worth"`
	Currency         string                   `json:"currency"`
	TotalAssets      string                   `json:"total_assets"`
	TotalLiabilities string                   `json:"total_liabilities"`
	Breakdown        map[string][]ItemSummary `json:"breakdown,omitempty"`
}

// ItemSummary is one financial item in the breakdown.
type ItemSummary struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Value    string `json:"value"`
	Notes    string `json:"notes,omitempty"`
	SubNotes string `json:"sub_notes,omitempty"`
}

func calculateNetWorth(data backend.FinancialData) NetWorthData {
	nw, _ := aggregate.NetWorth(data)

	return NetWorthData{
		NetWorth: nw,
		TotalAssets: aggregate.Category(data[backend.CategoryAssets]).
			Add(aggregate.Category(data[backend.CategoryNonCurrentAssets])),
		TotalLiabilities: aggregate.Category(data[backend.CategoryLiability]),
		Cards:            aggregate.Categories(data),
	}
}

// netWorthText is the backend figure, or "n/a" when there is none.
func (d NetWorthData) netWorthText() string {
	if d.NetWorth == "" {
		return "n/a"
	}
	return d.NetWorth.String()
}

func (d NetWorthData) jsonSummary(hidden, breakdown bool) NetWorthJSONSummary {
	s := NetWorthJSONSummary{
		NetWorth:         currency.Mask(hidden, d.netWorthText()),
		Currency:         currency.Code,
		TotalAssets:      currency.Mask(hidden, currency.Format(d.TotalAssets)),
		TotalLiabilities: currency.Mask(hidden, currency.Format(d.TotalLiabilities)),
	}
	if !breakdown {
		return s
	}

	s.Breakdown = make(map[string][]ItemSummary, len(d.Cards))
	for _, card := range d.Cards {
		items := make([]ItemSummary, 0, len(card.Items))
		for _, item := range card.Items {
			items = append(items, ItemSummary{
				Name:     item.Name,
				Type:     item.Type,
				Value:    currency.Mask(hidden, item.Value.String()),
				Notes:    item.Notes,
				SubNotes: item.SubNotes,
			})
		}
		s.Breakdown[card.Title] = items
	}
	return s
}
