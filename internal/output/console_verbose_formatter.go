package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

const barWidth = 30

// ConsoleVerboseFormatter renders the detailed, styled terminal report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	title := report.Title
	if title == "" {
		title = "Tariff Impact Report"
	}
	fmt.Fprintln(&buf, titleStyle.Render(strings.ToUpper(title)))
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintln(&buf, subtleStyle.Render("Generated "+report.GeneratedAt.Format("2006-01-02 15:04 MST")))
	}

	if report.IsEmpty() {
		fmt.Fprintln(&buf, subtleStyle.Render("Nothing to report."))
		return buf.Bytes(), nil
	}

	if b := report.Breakdown; b != nil {
		writeBreakdown(&buf, b)
	}
	if cmp := report.Comparison; cmp != nil {
		writeComparison(&buf, cmp)
	}
	if cr := report.Consumer; cr != nil {
		writeConsumer(&buf, cr)
	}
	if ir := report.Impact; ir != nil {
		writeImpact(&buf, ir)
	}

	if findings := KeyFindings(report); len(findings) > 0 {
		fmt.Fprintln(&buf, sectionStyle.Render("KEY FINDINGS"))
		fmt.Fprintln(&buf, boxStyle.Render(strings.Join(findings, "\n")))
	}

	fmt.Fprintln(&buf, sectionStyle.Render("ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintln(&buf, subtleStyle.Render("• "+a))
	}

	return buf.Bytes(), nil
}

func line(buf *bytes.Buffer, label, value string) {
	fmt.Fprintln(buf, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value))
}

func writeBreakdown(buf *bytes.Buffer, b *domain.BreakdownReport) {
	r := b.Result
	fmt.Fprintln(buf, sectionStyle.Render("LANDED COST BREAKDOWN"))
	if b.DutyRate != nil {
		label := b.DutyRate.Label
		if label == "" {
			label = b.DutyRate.Source
		}
		line(buf, "Classification:", fmt.Sprintf("%s (%s, %s)", b.Label, label, FormatPercentage(b.DutyRate.RatePercent)))
	}
	line(buf, "Taxable base:", FormatCurrency(r.TaxableBase))
	line(buf, "Duty:", FormatCurrency(r.DutyAmount))
	line(buf, "VAT:", FormatCurrency(r.VATAmount))
	line(buf, "Other fees:", FormatCurrency(r.OtherFeesAmount))
	line(buf, "Total landed cost:", highlightStyle.Render(FormatCurrency(r.TotalLandedCost)))
	line(buf, "Per unit:", FormatPerUnit(r.LandedCostPerUnit))
	line(buf, "Margin impact:", FormatPercentage(r.MarginImpactPercent))

	fmt.Fprintln(buf, sectionStyle.Render("WHAT-IF: PROPOSED DUTY"))
	line(buf, "New duty:", FormatCurrency(r.NewDutyAmount))
	line(buf, "Potential savings:", highlightStyle.Render(FormatCurrency(r.PotentialSavings)))
	line(buf, "To consumers:", FormatCurrency(r.ConsumerSavings))
	line(buf, "Reinvested:", FormatCurrency(r.ReinvestedSavings))
	line(buf, "Landed cost after change:", FormatCurrency(r.LandedCostAfterChange))
}

func writeComparison(buf *bytes.Buffer, cmp *domain.ComparisonResult) {
	fmt.Fprintln(buf, sectionStyle.Render("SCENARIO COMPARISON"))
	if cmp.Len() == 0 {
		fmt.Fprintln(buf, subtleStyle.Render("No eligible scenarios."))
		return
	}
	for i, e := range cmp.Entries {
		fmt.Fprintf(buf, "%d. %s  %s\n", i+1, highlightStyle.Render(e.Name),
			subtleStyle.Render(strings.TrimSpace(e.ClassificationKey+" "+e.Incoterm)))
		line(buf, "  Duty rate:", FormatPercentage(e.DutyRate.RatePercent))
		line(buf, "  Duty:", bar(scaleAt(cmp.Scaling.DutyAmount, i), barWidth)+" "+FormatCurrency(e.Breakdown.DutyAmount))
		line(buf, "  Total landed cost:", bar(scaleAt(cmp.Scaling.TotalLandedCost, i), barWidth)+" "+FormatCurrency(e.Breakdown.TotalLandedCost))
		line(buf, "  Per unit:", FormatPerUnit(e.Breakdown.LandedCostPerUnit))
	}

	ranks := calculation.RankScenarios(cmp)
	names := make([]string, 0, len(ranks))
	for _, r := range ranks {
		names = append(names, fmt.Sprintf("%d. %s", r.Rank, r.Name))
	}
	line(buf, "Ranking (per unit):", strings.Join(names, "  "))
}

func writeConsumer(buf *bytes.Buffer, cr *domain.ConsumerReport) {
	fmt.Fprintln(buf, sectionStyle.Render("CONSUMER PRICE PROJECTION"))
	fmt.Fprintf(buf, "%-6s %14s %14s %14s %14s\n", "Year", "Base", "Price before", "Consumer price", "Savings")
	for _, y := range cr.Projection.Years {
		fmt.Fprintf(buf, "%-6d %14s %14s %14s %14s\n", y.Year,
			FormatCurrency(y.BasePrice), FormatCurrency(y.PriceBefore),
			FormatCurrency(y.ConsumerPriceAfter), FormatCurrency(y.ConsumerSavings))
	}
	line(buf, "Total consumer savings:", highlightStyle.Render(FormatCurrency(cr.Projection.TotalConsumerSavings)))
}

func writeImpact(buf *bytes.Buffer, ir *domain.ImpactReport) {
	fmt.Fprintln(buf, sectionStyle.Render("IMPORT VALUE PROJECTION"))
	fmt.Fprintf(buf, "%-6s %16s %16s %16s\n", "Year", "Import value", "Tariff cost", "Total cost")
	for _, y := range ir.Projection.Years {
		fmt.Fprintf(buf, "%-6d %16s %16s %16s\n", y.Year,
			FormatWholeCurrency(y.ImportValue), FormatWholeCurrency(y.TariffCost), FormatWholeCurrency(y.TotalCost))
	}
	s := ir.Projection.Summary
	line(buf, "Total tariffs:", FormatWholeCurrency(s.TotalTariffs))
	line(buf, "Average impact:", FormatPercentage(s.AverageImpactPercent))
	line(buf, "Final year cost:", FormatWholeCurrency(s.FinalYearCost))
	line(buf, "Total value:", FormatWholeCurrency(s.TotalValue)+" ("+FormatCompactCurrency(s.TotalValue)+")")
}
