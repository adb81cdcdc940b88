package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

var decimalHundred = decimal.NewFromInt(100)

// DefaultAssumptions lists the calculation conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Duty is charged on the taxable base (goods value + shipping + insurance)",
	"VAT is charged on the duty-inclusive value",
	"Other fees are charged on the taxable base",
	"What-if duty = current duty x new duty rate factor / 100",
	"Rates come from a static lookup table, not a live tariff schedule",
}

// GenerateAssumptions adds report-specific lines to the default assumptions.
func GenerateAssumptions(report *domain.Report) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if b := report.Breakdown; b != nil {
		out = append(out, fmt.Sprintf("Consumers receive %s of potential savings", FormatPercentage(b.Input.SavingsSplitPercent)))
	}
	if c := report.Consumer; c != nil {
		out = append(out, fmt.Sprintf("Base price grows %s annually; %s of tariff savings passed to consumers",
			FormatPercentage(c.Input.AnnualGrowthPercent), FormatPercentage(c.Input.ConsumerPassThrough.Mul(decimalHundred))))
	}
	if i := report.Impact; i != nil {
		out = append(out, fmt.Sprintf("Import value grows %s annually at a %s tariff",
			FormatPercentage(i.Input.AnnualGrowthPercent), FormatPercentage(i.Input.TariffPercent)))
	}
	return out
}
