package currency

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain number", "1234.5", "1234.50"},
		{"currency code", "LKR 1,000.00", "1000.00"},
		{"sign after code", "LKR-2,000.00", "-2000.00"},
		{"sign after code with space", "LKR -2,000.00", "-2000.00"},
		{"rupee abbreviation with dot", "Rs. 1,500.50", "1500.50"},
		{"rupee abbreviation", "Rs 75", "75.00"},
		{"rupee sign", "₨12", "12.00"},
		{"large value", "LKR 12,345,678.91", "12345678.91"},
		{"surrounding whitespace", "  LKR 5.25 \t", "5.25"},
		{"empty", "", "0.00"},
		{"only whitespace", "   ", "0.00"},
		{"only currency code", "LKR", "0.00"},
		{"garbage", "abc", "0.00"},
		{"lone sign", "-", "0.00"},
		{"two decimal points", "1.2.3", "0.00"},
		{"huge negative exponent", "LKR 1e-99999999", "0.00"},
		{"large exponent", "1e30", "0.00"},
		{"upper case exponent", "1E5", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(log.New(io.Discard))
			got := p.Parse(tt.input)
			be.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseStrict(t *testing.T) {
	_, err := ParseStrict("")
	be.True(t, errors.Is(err, ErrEmpty))

	_, err = ParseStrict("twelve")
	be.True(t, errors.Is(err, ErrInvalid))

	_, err = ParseStrict("1E5")
	be.True(t, errors.Is(err, ErrInvalid))

	d, err := ParseStrict("LKR 10.10")
	be.NilErr(t, err)
	be.Equal(t, "10.10", d.StringFixed(2))
}

func TestParserCountsDegradedInputs(t *testing.T) {
	p := NewParser(log.New(io.Discard))

	p.Parse("LKR 1.00")
	p.Parse("")
	p.Parse("n/a")
	p.Parse("LKR 1,0x0")

	be.Equal(t, int64(2), p.Invalid())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"zero", "0", "LKR 0.00"},
		{"thousands", "1000", "LKR 1,000.00"},
		{"millions", "1234567.8", "LKR 1,234,567.80"},
		{"negative", "-2000", "-LKR 2,000.00"},
		{"rounds half up", "10.005", "LKR 10.01"},
		{"rounds negative half away from zero", "-10.005", "-LKR 10.01"},
		{"rounds down", "10.004", "LKR 10.00"},
		{"beyond int64 cents", "1e30", "LKR 1" + strings.Repeat(",000", 10) + ".00"},
		{"negative beyond int64 cents", "-123456789012345678901.235", "-LKR 123,456,789,012,345,678,901.24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, Format(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{"LKR 0.00", "LKR 1,000.00", "LKR 987,654.32", "-LKR 5.10"} {
		be.Equal(t, s, Format(Parse(s)))
	}
}

func TestMask(t *testing.T) {
	be.Equal(t, HiddenPlaceholder, Mask(true, "LKR 1.00"))
	be.Equal(t, "LKR 1.00", Mask(false, "LKR 1.00"))
}

func TestAmountUnmarshalJSON(t *testing.T) {
	var row struct {
		Text   Amount `json:"text"`
		Number Amount `json:"number"`
		Null   Amount `json:"null"`
		Object Amount `json:"object"`
	}

	err := json.Unmarshal([]byte(`{"text":"LKR-1,500.00","number":2500.5,"null":null,"object":{"a":1}}`), &row)
	be.NilErr(t, err)

	be.Equal(t, Amount("LKR-1,500.00"), row.Text)
	be.True(t, row.Text.IsNegative())
	be.Equal(t, Amount("2500.5"), row.Number)
	be.Equal(t, "2500.50", row.Number.Value().StringFixed(2))
	be.Equal(t, Amount(""), row.Null)
	be.True(t, row.Object.Value().IsZero())
}
