package currency

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is a money value exactly as the backend rendered it, for example
// "LKR 1,234.56". It is the source of every number derived from it.
type Amount string

// UnmarshalJSON accepts a string, a bare JSON literal (kept as its text)
// or null. It does not reject malformed amounts; Value degrades them.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*a = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(trimmed)
	}

	return nil
}

func (a Amount) String() string {
	return string(a)
}

// Value parses the amount with the package parser.
func (a Amount) Value() decimal.Decimal {
	return Parse(string(a))
}

// IsNegative reports whether the amount parses below zero.
func (a Amount) IsNegative() bool {
	return a.Value().IsNegative()
}
