package money

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent: 10 means 10%.
type Percent struct {
	decimal.Decimal
}

// NewPercent creates a Percent from a float64.
func NewPercent(value float64) Percent {
	return Percent{decimal.NewFromFloat(value)}
}

// ParsePercentLenient parses user text such as "7.5" or "7.5%", coercing
// empty or malformed input to zero.
func ParsePercentLenient(value string) Percent {
	s := clean(value)
	if n := len(s); n > 0 && s[n-1] == '%' {
		s = s[:n-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{decimal.Zero}
	}
	return Percent{d}
}

// Fraction converts the percentage into a plain ratio (10 -> 0.10).
func (p Percent) Fraction() decimal.Decimal {
	return p.Decimal.Shift(-2)
}

func (p Percent) String() string {
	return p.Decimal.StringFixed(2) + "%"
}

// UnmarshalText accepts user-entered text; malformed values become zero.
func (p *Percent) UnmarshalText(text []byte) error {
	*p = ParsePercentLenient(string(text))
	return nil
}

// UnmarshalJSON accepts both JSON numbers and strings.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = Percent{decimal.Zero}
		return nil
	}
	return p.UnmarshalText(bytes.Trim(data, `"`))
}
