package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// ProjectMultiYear simulates consumer prices before and after a tariff change over
// YearCount years. Year 1 uses the unmodified base price; growth compounds from year 2.
// A non-positive YearCount yields an empty projection. ConsumerPassThrough is not clamped.
func ProjectMultiYear(in domain.ProjectionInput) domain.ConsumerProjection {
	if in.YearCount <= 0 {
		return domain.ConsumerProjection{Years: []domain.YearProjection{}, TotalConsumerSavings: decimal.Zero}
	}

	growthFactor := decimalOne.Add(in.AnnualGrowthPercent.Div(decimalHundred))
	years := make([]domain.YearProjection, 0, in.YearCount)
	totalSavings := decimal.Zero
	currentBase := in.BasePrice

	for year := 1; year <= in.YearCount; year++ {
		tariffBefore := percentOf(currentBase, in.CurrentTariffPercent)
		priceBefore := currentBase.Add(tariffBefore)
		tariffAfter := percentOf(currentBase, in.NewTariffPercent)
		priceAfter := currentBase.Add(tariffAfter)

		consumerSavings := tariffBefore.Sub(tariffAfter).Mul(in.ConsumerPassThrough)

		years = append(years, domain.YearProjection{
			Year:               year,
			BasePrice:          currentBase,
			TariffBefore:       tariffBefore,
			PriceBefore:        priceBefore,
			TariffAfter:        tariffAfter,
			PriceAfter:         priceAfter,
			ConsumerPriceAfter: priceBefore.Sub(consumerSavings),
			ConsumerSavings:    consumerSavings,
		})

		totalSavings = totalSavings.Add(consumerSavings)
		currentBase = currentBase.Mul(growthFactor)
	}

	return domain.ConsumerProjection{Years: years, TotalConsumerSavings: totalSavings}
}

// ProjectImpact projects import value growth and tariff cost for year 0..Years
// inclusive. Row amounts are rounded to whole dollars; summary totals add the rounded rows.
func ProjectImpact(in domain.ImpactInput) domain.ImpactProjection {
	result := domain.ImpactProjection{
		Years: []domain.ImpactYear{},
		Summary: domain.ImpactSummary{
			TotalTariffs:         decimal.Zero,
			AverageImpactPercent: in.TariffPercent.Round(1),
			FinalYearCost:        decimal.Zero,
			TotalValue:           decimal.Zero,
		},
	}
	if in.Years < 0 {
		return result
	}

	growthFactor := decimalOne.Add(in.AnnualGrowthPercent.Div(decimalHundred))
	currentValue := in.ImportValue

	for year := 0; year <= in.Years; year++ {
		tariffCost := percentOf(currentValue, in.TariffPercent)
		row := domain.ImpactYear{
			Year:        year,
			ImportValue: currentValue.Round(0),
			TariffCost:  tariffCost.Round(0),
			TotalCost:   currentValue.Add(tariffCost).Round(0),
		}
		result.Years = append(result.Years, row)
		result.Summary.TotalTariffs = result.Summary.TotalTariffs.Add(row.TariffCost)
		result.Summary.TotalValue = result.Summary.TotalValue.Add(row.ImportValue)
		result.Summary.FinalYearCost = row.TotalCost

		currentValue = currentValue.Mul(growthFactor)
	}

	return result
}
