package output

import (
	"bytes"
	"fmt"

	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TARIFF CALCULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.Title != "" {
		fmt.Fprintln(&buf, report.Title)
	}
	fmt.Fprintln(&buf)

	if b := report.Breakdown; b != nil {
		r := b.Result
		fmt.Fprintf(&buf, "Landed cost: Total=%s PerUnit=%s Duty=%s VAT=%s Fees=%s\n",
			FormatCurrency(r.TotalLandedCost), FormatPerUnit(r.LandedCostPerUnit),
			FormatCurrency(r.DutyAmount), FormatCurrency(r.VATAmount), FormatCurrency(r.OtherFeesAmount))
		fmt.Fprintf(&buf, "  Savings=%s Consumer=%s Reinvested=%s\n",
			FormatCurrency(r.PotentialSavings), FormatCurrency(r.ConsumerSavings), FormatCurrency(r.ReinvestedSavings))
	}

	if cmp := report.Comparison; cmp != nil {
		for _, e := range cmp.Entries {
			fmt.Fprintf(&buf, "%s: Rate=%s Total=%s PerUnit=%s\n",
				e.Name, FormatPercentage(e.DutyRate.RatePercent),
				FormatCurrency(e.Breakdown.TotalLandedCost), FormatPerUnit(e.Breakdown.LandedCostPerUnit))
		}
		rec := calculation.Recommend(cmp)
		if rec.ScenarioID != "" {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Recommended: %s (saves %s / %s per unit)\n",
				rec.Name, FormatCurrency(rec.SavingsPerUnit), FormatPercentage(rec.SavingsPercent))
		}
	}

	if c := report.Consumer; c != nil {
		fmt.Fprintf(&buf, "Consumer projection: Years=%d TotalSavings=%s\n",
			len(c.Projection.Years), FormatCurrency(c.Projection.TotalConsumerSavings))
	}

	if i := report.Impact; i != nil {
		s := i.Projection.Summary
		fmt.Fprintf(&buf, "Import impact: TotalTariffs=%s FinalYearCost=%s TotalValue=%s\n",
			FormatWholeCurrency(s.TotalTariffs), FormatWholeCurrency(s.FinalYearCost), FormatWholeCurrency(s.TotalValue))
	}

	return buf.Bytes(), nil
}
