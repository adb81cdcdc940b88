package output

import (
	"bytes"
	"encoding/csv"

	"github.com/vntrade/tariff-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output: one row per calculation,
// comparison entries in display order after the single breakdown.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "ClassificationKey", "Incoterm", "DutyRatePercent", "TaxableBase", "Duty", "VAT", "OtherFees", "TotalLandedCost", "LandedCostPerUnit", "NewDuty", "PotentialSavings", "ConsumerSavings", "ReinvestedSavings", "MarginImpactPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if b := report.Breakdown; b != nil {
		name := b.Label
		if name == "" {
			name = "breakdown"
		}
		if err := w.Write(summaryRow(name, b.Label, "", b.Input.DutyRatePercent.String(), b.Result)); err != nil {
			return nil, err
		}
	}
	if cmp := report.Comparison; cmp != nil {
		for _, e := range cmp.Entries {
			if err := w.Write(summaryRow(e.Name, e.ClassificationKey, e.Incoterm, e.DutyRate.RatePercent.String(), e.Breakdown)); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func summaryRow(name, key, incoterm, rate string, r domain.CostBreakdownResult) []string {
	return []string{
		name,
		key,
		incoterm,
		rate,
		r.TaxableBase.StringFixed(2),
		r.DutyAmount.StringFixed(2),
		r.VATAmount.StringFixed(2),
		r.OtherFeesAmount.StringFixed(2),
		r.TotalLandedCost.StringFixed(2),
		perUnitCSV(r.LandedCostPerUnit),
		r.NewDutyAmount.StringFixed(2),
		r.PotentialSavings.StringFixed(2),
		r.ConsumerSavings.StringFixed(2),
		r.ReinvestedSavings.StringFixed(2),
		r.MarginImpactPercent.StringFixed(2),
	}
}
