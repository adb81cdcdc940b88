package domain

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTariffInputYAMLDefaults(t *testing.T) {
	var in TariffInput
	err := yaml.Unmarshal([]byte("base_value: 1500.50\nquantity: 20\nduty_rate_percent: 8.2\n"), &in)
	require.NoError(t, err)

	assert.True(t, in.BaseValue.Equal(decimal.RequireFromString("1500.5")))
	assert.True(t, in.Quantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, in.DutyRatePercent.Equal(decimal.RequireFromString("8.2")))
	assert.True(t, in.Shipping.IsZero())
	assert.True(t, in.VATPercent.Equal(DefaultVATPercent))
	assert.True(t, in.OtherFeesPercent.Equal(DefaultOtherFeesPercent))
	assert.True(t, in.NewDutyRateFactor.Equal(DefaultNewDutyRateFactor))
	assert.True(t, in.SavingsSplitPercent.Equal(DefaultSavingsSplitPercent))
}

func TestTariffInputYAMLExplicitZeros(t *testing.T) {
	var in TariffInput
	doc := "base_value: 100\nquantity: 0\nvat_percent: 0\nother_fees_percent: 0\nnew_duty_rate_factor: 0\nsavings_split_percent: 0\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &in))

	assert.True(t, in.Quantity.IsZero())
	assert.True(t, in.VATPercent.IsZero())
	assert.True(t, in.OtherFeesPercent.IsZero())
	assert.True(t, in.NewDutyRateFactor.IsZero())
	assert.True(t, in.SavingsSplitPercent.IsZero())
}

func TestTariffInputYAMLInvalidNumber(t *testing.T) {
	var in TariffInput
	err := yaml.Unmarshal([]byte("base_value: lots\n"), &in)
	assert.Error(t, err)
}

func TestTariffInputJSONDefaults(t *testing.T) {
	var in TariffInput
	require.NoError(t, json.Unmarshal([]byte(`{"base_value": 250, "quantity": "4", "vat_percent": 5}`), &in))

	assert.True(t, in.BaseValue.Equal(decimal.NewFromInt(250)))
	assert.True(t, in.Quantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, in.VATPercent.Equal(decimal.NewFromInt(5)))
	assert.True(t, in.OtherFeesPercent.Equal(DefaultOtherFeesPercent))
	assert.True(t, in.NewDutyRateFactor.Equal(DefaultNewDutyRateFactor))
}

func TestCostBreakdownResultPerUnit(t *testing.T) {
	r := CostBreakdownResult{}
	_, err := r.PerUnit()
	assert.ErrorIs(t, err, ErrUndefinedPerUnit)

	r.LandedCostPerUnit = decimal.NewNullDecimal(decimal.NewFromInt(12))
	v, err := r.PerUnit()
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromInt(12)))
}

func TestCostBreakdownResultJSONUndefinedPerUnit(t *testing.T) {
	data, err := json.Marshal(CostBreakdownResult{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"landed_cost_per_unit":null`)
}

func TestConsumerProjectionFinalYear(t *testing.T) {
	var cp ConsumerProjection
	_, ok := cp.FinalYear()
	assert.False(t, ok)

	cp.Years = []YearProjection{{Year: 1}, {Year: 2}}
	last, ok := cp.FinalYear()
	require.True(t, ok)
	assert.Equal(t, 2, last.Year)
}
