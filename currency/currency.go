// Package currency parses and formats the Sri Lankan Rupee amounts the
// backend sends as display strings.
//
// Parsing is best-effort: anything that cannot be read as a number counts
// as zero so that one malformed row under-counts a total instead of breaking
// it. Degraded inputs are logged and counted by the Parser that saw them.
package currency

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

const (
	// Code is the ISO 4217 code of every amount handled by finview.
	Code = "LKR"
	// HiddenPlaceholder replaces money values while values are hidden.
	HiddenPlaceholder = "∗∗∗∗∗∗"
)

var (
	// ErrEmpty is returned by ParseStrict when nothing is left after
	// removing currency tokens, separators and whitespace.
	ErrEmpty = errors.New("empty amount")
	// ErrInvalid is returned by ParseStrict for text that is not a number.
	ErrInvalid = errors.New("invalid amount")
)

// currencyTokens are removed before parsing. "Rs." must come before "Rs"
// or the dot would be read as a decimal point.
var currencyTokens = []string{Code, "Rs.", "Rs", "₨"}

// formatter renders cents as "LKR 1,234.56".
var formatter = money.NewFormatter(2, ".", ",", Code+" ", "$1")

func normalize(text string) string {
	for _, token := range currencyTokens {
		text = strings.ReplaceAll(text, token, "")
	}

	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// ParseStrict reads a formatted amount such as "LKR 1,234.56",
// "LKR-500.00" or "Rs. 12". The sign may follow the currency token.
func ParseStrict(text string) (decimal.Decimal, error) {
	s := normalize(text)
	if s == "" {
		return decimal.Zero, ErrEmpty
	}

	// backend amounts are grouped decimals; exponents are malformed and
	// would make later arithmetic rescale without bound
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, text)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, text)
	}

	return d, nil
}

// Parser converts amounts and keeps track of inputs it had to zero.
type Parser struct {
	logger  *log.Logger
	invalid atomic.Int64
}

// NewParser returns a Parser reporting degraded inputs to logger.
// A nil logger reports to the default charmbracelet logger.
func NewParser(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse returns the value of text, or zero when it cannot be read.
// Empty input is a legitimate zero and is not reported.
func (p *Parser) Parse(text string) decimal.Decimal {
	d, err := ParseStrict(text)
	if err == nil {
		return d
	}

	if !errors.Is(err, ErrEmpty) {
		p.invalid.Add(1)
		p.log().Warn("amount degraded to zero", "input", text, "error", err)
	}

	return decimal.Zero
}

// Invalid returns how many non-empty inputs were degraded to zero.
func (p *Parser) Invalid() int64 {
	return p.invalid.Load()
}

func (p *Parser) log() *log.Logger {
	if p.logger != nil {
		return p.logger
	}
	return log.Default()
}

var defaultParser = NewParser(nil)

// Parse reads text with the package parser. See Parser.Parse.
func Parse(text string) decimal.Decimal {
	return defaultParser.Parse(text)
}

// Invalid returns the number of inputs the package parser degraded.
func Invalid() int64 {
	return defaultParser.Invalid()
}

// Format renders d as "LKR 1,234.56", rounding half away from zero to
// cents. Negative values render as "-LKR 1,234.56".
func Format(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0)
	if cents.BigInt().IsInt64() {
		return formatter.Format(cents.IntPart())
	}
	return formatLarge(d.Round(2))
}

// formatLarge renders amounts whose cents do not fit in an int64.
func formatLarge(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + Code + " " + b.String() + "." + frac
}

// Mask hides text behind HiddenPlaceholder when hidden is set.
func Mask(hidden bool, text string) string {
	if hidden {
		return HiddenPlaceholder
	}
	return text
}
