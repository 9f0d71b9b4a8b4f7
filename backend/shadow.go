package backend

import (
	"fmt"
	"math"

	"github.com/Rshep3087/finview/currency"
	"github.com/shopspring/decimal"
)

// shadowTolerance is the largest difference, in rupees, accepted between
// a display string and its numeric copy.
var shadowTolerance = decimal.New(1, -2)

// ShadowMismatch records a numeric field that disagrees with the display
// string it shadows.
type ShadowMismatch struct {
	Owner  string
	Row    int
	Symbol string
	Field  string
	Text   currency.Amount
	Value  float64
}

func (m ShadowMismatch) String() string {
	return fmt.Sprintf("%s %s: %s is %q but numeric copy is %g", m.Owner, m.Symbol, m.Field, m.Text, m.Value)
}

// CheckShadowFields compares every present numeric shadow with its string.
func CheckShadowFields(p Portfolio[LiveHolding]) []ShadowMismatch {
	var mismatches []ShadowMismatch

	for _, owner := range p.Owners() {
		for _, h := range p[owner] {
			if h.GainLossValue != nil && diverges(h.GainLoss, *h.GainLossValue) {
				mismatches = append(mismatches, ShadowMismatch{
					Owner: owner, Row: h.Row, Symbol: h.StockSymbol,
					Field: "gain_loss", Text: h.GainLoss, Value: *h.GainLossValue,
				})
			}
			if h.CurrentPriceValue != nil && diverges(h.CurrentPrice, *h.CurrentPriceValue) {
				mismatches = append(mismatches, ShadowMismatch{
					Owner: owner, Row: h.Row, Symbol: h.StockSymbol,
					Field: "current_price", Text: h.CurrentPrice, Value: *h.CurrentPriceValue,
				})
			}
		}
	}

	return mismatches
}

func diverges(text currency.Amount, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return true
	}
	return text.Value().Sub(decimal.NewFromFloat(value)).Abs().GreaterThan(shadowTolerance)
}
