package money

import (
	"bytes"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = "USD"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// FromInt creates a new Money instance from a whole amount
func FromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// FromDecimal creates a new Money instance from a decimal.Decimal
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Parse creates a new Money instance from a string. Grouping commas, spaces
// and a leading currency symbol are ignored.
func Parse(value string) (Money, error) {
	d, err := decimal.NewFromString(clean(value))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// ParseLenient parses user text and coerces empty or malformed input to zero.
func ParseLenient(value string) Money {
	m, err := Parse(value)
	if err != nil {
		return Zero()
	}
	return m
}

func clean(value string) string {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "$")
	s = strings.NewReplacer(",", "", " ", "", "_", "").Replace(s)
	return s
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount in the given ISO currency, with grouping and
// the currency symbol, e.g. "$1,234.50". Unknown codes fall back to USD.
func (m Money) Format(currency string) string {
	if currency == "" || gomoney.GetCurrency(strings.ToUpper(currency)) == nil {
		currency = DefaultCurrency
	}
	cur := gomoney.GetCurrency(strings.ToUpper(currency))
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Compact formats large amounts the way chart axes do: $1.2M, $15K, $950.
func (m Money) Compact() string {
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	switch {
	case m.Decimal.GreaterThanOrEqual(million):
		return "$" + m.Decimal.Div(million).StringFixed(1) + "M"
	case m.Decimal.GreaterThanOrEqual(thousand):
		return "$" + m.Decimal.Div(thousand).StringFixed(0) + "K"
	default:
		return "$" + m.Decimal.StringFixed(0)
	}
}

// UnmarshalText accepts user-entered text; malformed values become zero.
func (m *Money) UnmarshalText(text []byte) error {
	*m = ParseLenient(string(text))
	return nil
}

// UnmarshalJSON accepts both JSON numbers and strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*m = Zero()
		return nil
	}
	return m.UnmarshalText(bytes.Trim(data, `"`))
}
