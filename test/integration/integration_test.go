package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

func loadExample(t *testing.T) *domain.ScenarioFile {
	t.Helper()
	parser := config.NewInputParser()
	file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
	require.NoError(t, err)
	return file
}

func TestEndToEndComparison(t *testing.T) {
	file := loadExample(t)
	require.Len(t, file.Scenarios, 3)

	engine := calculation.NewEngine()
	result := engine.CompareScenarios(file.Scenarios)
	require.Equal(t, 3, result.Len())
	assert.Equal(t, []string{"tees", "laptops", "fans"}, result.IDs())

	tees, ok := result.Get("tees")
	require.True(t, ok)
	assert.Equal(t, domain.RateSourcePrefix, tees.DutyRate.Source)
	// lane preset fills shipping and insurance
	assert.True(t, tees.Breakdown.TaxableBase.Equal(decimal.NewFromInt(27000)))

	// no rule covers chapter 84, so laptops fall back to the default rate
	laptops, _ := result.Get("laptops")
	assert.Equal(t, domain.RateSourceDefault, laptops.DutyRate.Source)
	assert.True(t, laptops.DutyRate.RatePercent.Equal(decimal.NewFromInt(10)))
	// factor 0 removes the duty entirely
	assert.True(t, laptops.Breakdown.PotentialSavings.Equal(laptops.Breakdown.DutyAmount))

	fans, _ := result.Get("fans")
	assert.Equal(t, domain.RateSourceOverride, fans.DutyRate.Source)
	assert.True(t, fans.Breakdown.DutyAmount.Equal(decimal.NewFromInt(480)))

	rec := calculation.Recommend(result)
	assert.Equal(t, "tees", rec.ScenarioID)
	assert.True(t, rec.SavingsPerUnit.IsPositive())
}

func TestEndToEndProjections(t *testing.T) {
	file := loadExample(t)
	engine := calculation.NewEngine()

	consumer := engine.ProjectMultiYear(*file.Projection)
	require.Len(t, consumer.Years, 5)
	assert.True(t, consumer.Years[0].ConsumerSavings.Equal(decimal.RequireFromString("2.5")))

	impact := engine.ProjectImpact(*file.Impact)
	require.Len(t, impact.Years, 6)
	assert.True(t, impact.Summary.AverageImpactPercent.Equal(decimal.NewFromInt(10)))
	last := impact.Years[len(impact.Years)-1]
	assert.True(t, impact.Summary.FinalYearCost.Equal(last.TotalCost))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	file := loadExample(t)
	assert.NoError(t, parser.ValidateConfiguration(file))

	file.Scenarios = append(file.Scenarios, file.Scenarios[0])
	file.Scenarios[3].ID = "extra"
	assert.ErrorIs(t, parser.ValidateConfiguration(file), config.ErrTooManyScenarios)
}
