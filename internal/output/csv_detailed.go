package output

import (
	"bytes"
	"encoding/csv"

	"github.com/vntrade/tariff-calculator/internal/domain"
)

// CSVDetailedExporter provides one row per projected year. Consumer projection rows
// come first, then import value projection rows; columns a series does not have are empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Series", "Year", "BasePrice", "TariffBefore", "PriceBefore", "TariffAfter", "PriceAfter", "ConsumerPriceAfter", "ConsumerSavings", "ImportValue", "TariffCost", "TotalCost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if cr := report.Consumer; cr != nil {
		for _, y := range cr.Projection.Years {
			row := []string{
				"consumer",
				intToString(y.Year),
				y.BasePrice.StringFixed(2),
				y.TariffBefore.StringFixed(2),
				y.PriceBefore.StringFixed(2),
				y.TariffAfter.StringFixed(2),
				y.PriceAfter.StringFixed(2),
				y.ConsumerPriceAfter.StringFixed(2),
				y.ConsumerSavings.StringFixed(2),
				"", "", "",
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	if ir := report.Impact; ir != nil {
		for _, y := range ir.Projection.Years {
			row := []string{
				"impact",
				intToString(y.Year),
				"", "", "", "", "", "", "",
				y.ImportValue.StringFixed(0),
				y.TariffCost.StringFixed(0),
				y.TotalCost.StringFixed(0),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
