package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

func TestProjectMultiYear_ReferenceScenario(t *testing.T) {
	proj := ProjectMultiYear(domain.ProjectionInput{
		BasePrice:            dec("100"),
		CurrentTariffPercent: dec("10"),
		NewTariffPercent:     dec("5"),
		AnnualGrowthPercent:  dec("2"),
		YearCount:            5,
		ConsumerPassThrough:  dec("0.5"),
	})
	require.Len(t, proj.Years, 5)

	y1 := proj.Years[0]
	assert.Equal(t, 1, y1.Year)
	assert.True(t, y1.BasePrice.Equal(dec("100")))
	assert.True(t, y1.TariffBefore.Equal(dec("10")))
	assert.True(t, y1.PriceBefore.Equal(dec("110")))
	assert.True(t, y1.TariffAfter.Equal(dec("5")))
	assert.True(t, y1.PriceAfter.Equal(dec("105")))
	assert.True(t, y1.ConsumerSavings.Equal(dec("2.5")))
	assert.True(t, y1.ConsumerPriceAfter.Equal(dec("107.5")))

	y2 := proj.Years[1]
	assert.Equal(t, 2, y2.Year)
	assert.True(t, y2.BasePrice.Equal(dec("102")), "year 2 base: %s", y2.BasePrice)

	total := dec("0")
	for i, y := range proj.Years {
		total = total.Add(y.ConsumerSavings)
		if i > 0 {
			prev := proj.Years[i-1].BasePrice
			assert.True(t, y.BasePrice.Equal(prev.Mul(dec("1.02"))), "year %d", y.Year)
			assert.True(t, y.BasePrice.GreaterThan(prev))
		}
	}
	assert.True(t, proj.TotalConsumerSavings.Equal(total))

	last, ok := proj.FinalYear()
	require.True(t, ok)
	assert.Equal(t, 5, last.Year)
}

func TestProjectMultiYear_ZeroYears(t *testing.T) {
	for _, n := range []int{0, -3} {
		proj := ProjectMultiYear(domain.ProjectionInput{BasePrice: dec("100"), YearCount: n})
		assert.NotNil(t, proj.Years)
		assert.Empty(t, proj.Years)
		assert.True(t, proj.TotalConsumerSavings.IsZero())
		_, ok := proj.FinalYear()
		assert.False(t, ok)
	}
}

func TestProjectMultiYear_GrowthDirection(t *testing.T) {
	tests := []struct {
		name   string
		growth string
		check  func(prev, cur string) bool
	}{
		{"flat", "0", func(p, c string) bool { return dec(c).Equal(dec(p)) }},
		{"shrinking", "-3", func(p, c string) bool { return dec(c).LessThan(dec(p)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := ProjectMultiYear(domain.ProjectionInput{
				BasePrice:            dec("250"),
				CurrentTariffPercent: dec("20"),
				NewTariffPercent:     dec("10"),
				AnnualGrowthPercent:  dec(tt.growth),
				YearCount:            4,
				ConsumerPassThrough:  dec("1"),
			})
			require.Len(t, proj.Years, 4)
			for i := 1; i < len(proj.Years); i++ {
				assert.True(t, tt.check(proj.Years[i-1].BasePrice.String(), proj.Years[i].BasePrice.String()),
					"year %d base %s", proj.Years[i].Year, proj.Years[i].BasePrice)
			}
		})
	}
}

func TestProjectMultiYear_PassThroughNotClamped(t *testing.T) {
	proj := ProjectMultiYear(domain.ProjectionInput{
		BasePrice:            dec("100"),
		CurrentTariffPercent: dec("10"),
		NewTariffPercent:     dec("0"),
		YearCount:            1,
		ConsumerPassThrough:  dec("1.5"),
	})
	require.Len(t, proj.Years, 1)
	assert.True(t, proj.Years[0].ConsumerSavings.Equal(dec("15")))
	assert.True(t, proj.Years[0].ConsumerPriceAfter.Equal(dec("95")))
}

func TestProjectImpact(t *testing.T) {
	proj := ProjectImpact(domain.ImpactInput{
		ImportValue:         dec("1000000"),
		TariffPercent:       dec("10"),
		AnnualGrowthPercent: dec("5"),
		Years:               2,
	})
	require.Len(t, proj.Years, 3)

	assert.Equal(t, 0, proj.Years[0].Year)
	assert.True(t, proj.Years[0].ImportValue.Equal(dec("1000000")))
	assert.True(t, proj.Years[0].TariffCost.Equal(dec("100000")))
	assert.True(t, proj.Years[0].TotalCost.Equal(dec("1100000")))

	assert.True(t, proj.Years[1].ImportValue.Equal(dec("1050000")))
	assert.True(t, proj.Years[2].ImportValue.Equal(dec("1102500")))
	assert.True(t, proj.Years[2].TariffCost.Equal(dec("110250")))

	assert.True(t, proj.Summary.TotalTariffs.Equal(dec("315250")), "total tariffs: %s", proj.Summary.TotalTariffs)
	assert.True(t, proj.Summary.TotalValue.Equal(dec("3152500")))
	assert.True(t, proj.Summary.FinalYearCost.Equal(dec("1212750")))
	assert.True(t, proj.Summary.AverageImpactPercent.Equal(dec("10")))
}

func TestProjectImpact_RoundsRows(t *testing.T) {
	proj := ProjectImpact(domain.ImpactInput{
		ImportValue:   dec("999.6"),
		TariffPercent: dec("12.35"),
		Years:         0,
	})
	require.Len(t, proj.Years, 1)
	assert.True(t, proj.Years[0].ImportValue.Equal(dec("1000")))
	assert.True(t, proj.Years[0].TariffCost.Equal(dec("123")), "tariff: %s", proj.Years[0].TariffCost)
	assert.True(t, proj.Summary.AverageImpactPercent.Equal(dec("12.4")))
}

func TestProjectImpact_NegativeYears(t *testing.T) {
	proj := ProjectImpact(domain.ImpactInput{ImportValue: dec("10"), Years: -1})
	assert.Empty(t, proj.Years)
	assert.True(t, proj.Summary.TotalTariffs.IsZero())
}
