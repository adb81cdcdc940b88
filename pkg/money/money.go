package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// Money represents a USD amount with decimal precision
type Money struct {
	decimal.Decimal
}

// New creates a Money from a decimal.Decimal
func New(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromString creates a Money from a string
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Percent returns pct percent of the amount (Percent(10) of $200 is $20).
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{m.Decimal.Mul(pct).Div(decimal.NewFromInt(100))}
}

// String returns the amount with two decimals and no symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as "$1,234.56" ("-$1,234.56" when negative).
func (m Money) Format() string {
	return format(m.Decimal, 2)
}

// FormatWhole renders the amount rounded to whole dollars as "$1,235".
func (m Money) FormatWhole() string {
	return format(m.Decimal, 0)
}

// FormatCompact renders large amounts as "$1.2K", "$3.4M" or "$5.6B".
func (m Money) FormatCompact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	units := []string{"K", "M", "B"}
	value := abs
	unit := ""
	for _, u := range units {
		if value.LessThan(thousand) {
			break
		}
		value = value.Div(thousand)
		unit = u
	}
	if unit == "" {
		return sign + "$" + abs.Round(0).String()
	}
	return sign + "$" + value.StringFixed(1) + unit
}

func format(d decimal.Decimal, places int32) string {
	fixed := d.Abs().StringFixed(places)
	intPart, frac, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(places).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(GroupThousands(intPart))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// GroupThousands inserts commas into a string of digits ("1234567" -> "1,234,567").
func GroupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders a whole-number percentage with up to places decimals ("8.2%").
func FormatPercent(pct decimal.Decimal, places int32) string {
	return pct.Round(places).String() + "%"
}
