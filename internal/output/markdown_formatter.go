package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vntrade/tariff-calculator/internal/domain"
)

// MarkdownFormatter renders the report as a Markdown policy brief.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	title := report.Title
	if title == "" {
		title = "Tariff Impact Brief"
	}
	fmt.Fprintf(&buf, "# %s\n\n", escapeMarkdown(title))
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "_Generated %s_\n\n", report.GeneratedAt.Format("January 2, 2006"))
	}

	if findings := KeyFindings(report); len(findings) > 0 {
		buf.WriteString("## Key Findings\n\n")
		for _, f := range findings {
			fmt.Fprintf(&buf, "- %s\n", escapeMarkdown(f))
		}
		buf.WriteString("\n")
	}

	if b := report.Breakdown; b != nil {
		r := b.Result
		buf.WriteString("## Landed Cost Breakdown\n\n")
		buf.WriteString("| Item | Amount |\n|---|---:|\n")
		rows := [][2]string{
			{"Taxable base", FormatCurrency(r.TaxableBase)},
			{"Duty", FormatCurrency(r.DutyAmount)},
			{"VAT", FormatCurrency(r.VATAmount)},
			{"Other fees", FormatCurrency(r.OtherFeesAmount)},
			{"**Total landed cost**", "**" + FormatCurrency(r.TotalLandedCost) + "**"},
			{"Per unit", FormatPerUnit(r.LandedCostPerUnit)},
			{"Potential savings", FormatCurrency(r.PotentialSavings)},
			{"Consumer savings", FormatCurrency(r.ConsumerSavings)},
			{"Reinvested savings", FormatCurrency(r.ReinvestedSavings)},
		}
		for _, row := range rows {
			fmt.Fprintf(&buf, "| %s | %s |\n", row[0], row[1])
		}
		buf.WriteString("\n")
	}

	if cmp := report.Comparison; cmp != nil && cmp.Len() > 0 {
		buf.WriteString("## Scenario Comparison\n\n")
		buf.WriteString("| Scenario | Classification | Duty rate | Duty | Total landed cost | Per unit |\n|---|---|---:|---:|---:|---:|\n")
		for _, e := range cmp.Entries {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s | %s | %s |\n",
				escapeMarkdown(e.Name), escapeMarkdown(e.ClassificationKey), FormatPercentage(e.DutyRate.RatePercent),
				FormatCurrency(e.Breakdown.DutyAmount), FormatCurrency(e.Breakdown.TotalLandedCost),
				FormatPerUnit(e.Breakdown.LandedCostPerUnit))
		}
		buf.WriteString("\n")
	}

	if cr := report.Consumer; cr != nil && len(cr.Projection.Years) > 0 {
		buf.WriteString("## Consumer Price Projection\n\n")
		buf.WriteString("| Year | Price before | Consumer price | Savings |\n|---:|---:|---:|---:|\n")
		for _, y := range cr.Projection.Years {
			fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", y.Year,
				FormatCurrency(y.PriceBefore), FormatCurrency(y.ConsumerPriceAfter), FormatCurrency(y.ConsumerSavings))
		}
		buf.WriteString("\n")
	}

	if ir := report.Impact; ir != nil && len(ir.Projection.Years) > 0 {
		buf.WriteString("## Import Value Projection\n\n")
		buf.WriteString("| Year | Import value | Tariff cost | Total cost |\n|---:|---:|---:|---:|\n")
		for _, y := range ir.Projection.Years {
			fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", y.Year,
				FormatWholeCurrency(y.ImportValue), FormatWholeCurrency(y.TariffCost), FormatWholeCurrency(y.TotalCost))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Assumptions\n\n")
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "- %s\n", escapeMarkdown(a))
	}

	return buf.Bytes(), nil
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`", "<", "&lt;", ">", "&gt;")

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }
