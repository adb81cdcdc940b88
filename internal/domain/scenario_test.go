package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestScenarioIsEligible(t *testing.T) {
	ok := Scenario{
		ClassificationKey: "6109.10",
		Input:             TariffInput{BaseValue: decimal.NewFromInt(10), Quantity: decimal.NewFromInt(1)},
	}
	assert.True(t, ok.IsEligible())

	noKey := ok
	noKey.ClassificationKey = ""
	assert.False(t, noKey.IsEligible())

	noBase := ok
	noBase.Input.BaseValue = decimal.Zero
	assert.False(t, noBase.IsEligible())

	noQty := ok
	noQty.Input.Quantity = decimal.NewFromInt(-1)
	assert.False(t, noQty.IsEligible())
}

func TestComparisonResultAccessors(t *testing.T) {
	var nilResult *ComparisonResult
	assert.Equal(t, 0, nilResult.Len())
	assert.Nil(t, nilResult.IDs())
	_, found := nilResult.Get("a")
	assert.False(t, found)

	cr := &ComparisonResult{Entries: []ScenarioResult{{ScenarioID: "a"}, {ScenarioID: "b"}}}
	assert.Equal(t, 2, cr.Len())
	assert.Equal(t, []string{"a", "b"}, cr.IDs())
	got, found := cr.Get("b")
	require.True(t, found)
	assert.Equal(t, "b", got.ScenarioID)
}

func TestScenarioFileYAML(t *testing.T) {
	doc := `
title: Apparel sourcing
scenarios:
  - id: tees
    name: Cotton tees
    classification_key: "6109.10"
    incoterm: FOB
    trade_lane: hcmc-la
    duty_rate_override: 12.5
    input:
      base_value: 10000
      quantity: 500
projection:
  base_price: 100
  current_tariff_percent: 10
  new_tariff_percent: 5
  annual_growth_percent: 2
  year_count: 5
  consumer_pass_through: 0.5
`
	var f ScenarioFile
	require.NoError(t, yaml.Unmarshal([]byte(doc), &f))

	require.Len(t, f.Scenarios, 1)
	sc := f.Scenarios[0]
	assert.Equal(t, "6109.10", sc.ClassificationKey)
	require.NotNil(t, sc.DutyRateOverride)
	assert.True(t, sc.DutyRateOverride.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, sc.Input.VATPercent.Equal(DefaultVATPercent))
	require.NotNil(t, f.Projection)
	assert.Equal(t, 5, f.Projection.YearCount)
	assert.Nil(t, f.Impact)
	assert.Nil(t, f.Rates)
}

func TestRateTableLane(t *testing.T) {
	rt := RateTable{TradeLanes: []TradeLane{{ID: "hcmc-la", Shipping: decimal.NewFromInt(1800)}}}
	lane, ok := rt.Lane("hcmc-la")
	require.True(t, ok)
	assert.True(t, lane.Shipping.Equal(decimal.NewFromInt(1800)))
	_, ok = rt.Lane("nowhere")
	assert.False(t, ok)
}

func TestReportIsEmpty(t *testing.T) {
	r := Report{Title: "x"}
	assert.True(t, r.IsEmpty())
	r.Impact = &ImpactReport{}
	assert.False(t, r.IsEmpty())
}
