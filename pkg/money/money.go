package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Baht is a THB amount with financial precision.
type Baht struct {
	decimal.Decimal
}

// New creates a Baht amount from a float64.
func New(value float64) Baht {
	return Baht{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Baht {
	return Baht{d}
}

// FromString parses a Baht amount.
func FromString(value string) (Baht, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Baht{}, err
	}
	return Baht{d}, nil
}

// Zero returns a zero amount.
func Zero() Baht {
	return Baht{decimal.Zero}
}

// Round rounds to satang (two decimal places).
func (b Baht) Round() Baht {
	return Baht{b.Decimal.Round(2)}
}

// Add returns b + other.
func (b Baht) Add(other Baht) Baht {
	return Baht{b.Decimal.Add(other.Decimal)}
}

// Sub returns b - other.
func (b Baht) Sub(other Baht) Baht {
	return Baht{b.Decimal.Sub(other.Decimal)}
}

// String returns the plain fixed-point form.
func (b Baht) String() string {
	return b.Decimal.StringFixed(2)
}

// Format renders the amount with thousands separators and the THB suffix,
// e.g. "1,234,567.89 THB".
func (b Baht) Format() string {
	return group(b.Decimal.StringFixed(2)) + " THB"
}

// FormatWhole renders the amount with thousands separators and no decimals.
func (b Baht) FormatWhole() string {
	return group(b.Decimal.StringFixed(0)) + " THB"
}

// group inserts thousands separators into a plain decimal string.
func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := sb.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
