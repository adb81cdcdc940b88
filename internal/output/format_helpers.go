package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/pkg/money"
)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.New(amount).Format() }

// FormatWholeCurrency formats a decimal as whole US dollars.
func FormatWholeCurrency(amount decimal.Decimal) string { return money.New(amount).FormatWhole() }

// FormatCompactCurrency formats large amounts as "$1.2M".
func FormatCompactCurrency(amount decimal.Decimal) string { return money.New(amount).FormatCompact() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatPerUnit formats a per-unit cost, or "n/a" when it is undefined.
func FormatPerUnit(v decimal.NullDecimal) string {
	if !v.Valid {
		return "n/a"
	}
	return FormatCurrency(v.Decimal)
}

func perUnitCSV(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return v.Decimal.StringFixed(2)
}

func intToString(i int) string { return strconv.Itoa(i) }

// bar renders a percentage (0-100) as a fixed-width text bar.
func bar(pct decimal.Decimal, width int) string {
	filled := int(pct.Mul(decimal.NewFromInt(int64(width))).Div(decimalHundred).Round(0).IntPart())
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func scaleAt(values []decimal.Decimal, i int) decimal.Decimal {
	if i < len(values) {
		return values[i]
	}
	return decimal.Zero
}
