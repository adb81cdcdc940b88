package output

import (
	"fmt"

	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// KeyFindings summarizes the headline numbers of a report, one sentence each.
func KeyFindings(report *domain.Report) []string {
	var findings []string

	if b := report.Breakdown; b != nil {
		r := b.Result
		findings = append(findings, fmt.Sprintf("Total landed cost is %s, of which duty is %s.",
			FormatCurrency(r.TotalLandedCost), FormatCurrency(r.DutyAmount)))
		if r.PotentialSavings.IsPositive() {
			findings = append(findings, fmt.Sprintf("The proposed rate saves %s: %s to consumers and %s reinvested.",
				FormatCurrency(r.PotentialSavings), FormatCurrency(r.ConsumerSavings), FormatCurrency(r.ReinvestedSavings)))
		}
	}

	if report.Comparison != nil {
		rec := calculation.Recommend(report.Comparison)
		if rec.ScenarioID != "" {
			findings = append(findings, fmt.Sprintf("%s has the lowest landed cost per unit at %s (%s less than the highest).",
				rec.Name, FormatCurrency(rec.LandedCostPerUnit), FormatCurrency(rec.SavingsPerUnit)))
		} else if report.Comparison.Len() == 0 {
			findings = append(findings, "No scenario had enough data to compare.")
		}
	}

	if c := report.Consumer; c != nil && len(c.Projection.Years) > 0 {
		findings = append(findings, fmt.Sprintf("Consumers save %s over %d years.",
			FormatCurrency(c.Projection.TotalConsumerSavings), len(c.Projection.Years)))
	}

	if i := report.Impact; i != nil && len(i.Projection.Years) > 0 {
		findings = append(findings, fmt.Sprintf("Tariffs total %s on %s of imports; final-year cost is %s.",
			FormatWholeCurrency(i.Projection.Summary.TotalTariffs), FormatWholeCurrency(i.Projection.Summary.TotalValue),
			FormatWholeCurrency(i.Projection.Summary.FinalYearCost)))
	}

	return findings
}
