package aggregate

import (
	"strings"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
	"github.com/shopspring/decimal"
)

// Symbol drops the exchange suffix: "JKH.N0000" becomes "JKH".
func Symbol(stockSymbol string) string {
	before, _, _ := strings.Cut(stockSymbol, ".")
	return before
}

// CostPerShare is the average price paid per share. It reports false when
// the share count is zero or unreadable.
func CostPerShare(h backend.Holding) (decimal.Decimal, bool) {
	shares := h.NumberOfShares.Value()
	if shares.IsZero() {
		return decimal.Zero, false
	}
	return h.ActualCost.Value().Div(shares), true
}

// Direction is the sign of a change.
type Direction int

const (
	Flat Direction = iota
	Gain
	Loss
)

// Trend classifies an amount by sign.
func Trend(a currency.Amount) Direction {
	switch v := a.Value(); {
	case v.IsPositive():
		return Gain
	case v.IsNegative():
		return Loss
	default:
		return Flat
	}
}
