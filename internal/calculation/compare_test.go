package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

type recordingLogger struct {
	NopLogger
	warnings []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, format)
}

func scenario(id, key string) domain.Scenario {
	in := baseInput()
	in.BaseValue = dec("1000")
	in.Quantity = dec("10")
	return domain.Scenario{ID: id, Name: "Scenario " + id, ClassificationKey: key, Input: in}
}

func TestCompareScenarios_SkipsIneligible(t *testing.T) {
	e := NewEngine()
	res := e.CompareScenarios([]domain.Scenario{
		scenario("a", "6109.10"),
		scenario("b", ""),
		scenario("c", "8517.12"),
	})

	require.Equal(t, 2, res.Len())
	assert.Equal(t, []string{"a", "c"}, res.IDs())
	assert.Len(t, res.Scaling.DutyAmount, 2)
	assert.Len(t, res.Scaling.TotalLandedCost, 2)
	assert.Len(t, res.Scaling.MarginImpact, 2)
}

func TestCompareScenarios_ResolvesRates(t *testing.T) {
	e := NewEngine()
	override := dec("3")
	withOverride := scenario("d", "6109.10")
	withOverride.DutyRateOverride = &override

	res := e.CompareScenarios([]domain.Scenario{
		scenario("a", "6109.10"),
		scenario("b", "electronics"),
		withOverride,
	})
	require.Equal(t, 3, res.Len())

	a, ok := res.Get("a")
	require.True(t, ok)
	assert.Equal(t, domain.RateSourcePrefix, a.DutyRate.Source)
	assert.True(t, a.DutyRate.RatePercent.Equal(dec("16.5")))
	assert.True(t, a.Breakdown.DutyAmount.Equal(dec("165")))

	b, _ := res.Get("b")
	assert.Equal(t, domain.RateSourceSector, b.DutyRate.Source)
	assert.True(t, b.Breakdown.DutyAmount.Equal(dec("85")))

	d, _ := res.Get("d")
	assert.Equal(t, domain.RateSourceOverride, d.DutyRate.Source)
	assert.True(t, d.Breakdown.DutyAmount.Equal(dec("30")))

	// textiles carry the largest duty
	assert.True(t, res.Scaling.DutyAmount[0].Equal(dec("100")))
}

func TestCompareScenarios_DefaultsAndLanes(t *testing.T) {
	e := NewEngine()
	sc := scenario("", "9401.80")
	sc.Name = ""
	sc.TradeLane = "hcmc-la"

	res := e.CompareScenarios([]domain.Scenario{sc})
	require.Equal(t, 1, res.Len())
	entry := res.Entries[0]
	assert.Equal(t, "scenario-1", entry.ScenarioID)
	assert.Equal(t, "scenario-1", entry.Name)
	assert.True(t, entry.Breakdown.TaxableBase.Equal(dec("3000")), "taxable: %s", entry.Breakdown.TaxableBase)
}

func TestCompareScenarios_GeneratedIDsAvoidExplicitIDs(t *testing.T) {
	e := NewEngine()
	res := e.CompareScenarios([]domain.Scenario{
		scenario("", "6109.10"),
		scenario("", "8517.12"),
		scenario("scenario-2", "9401.80"),
	})

	require.Equal(t, 3, res.Len())
	assert.Equal(t, []string{"scenario-1", "scenario-3", "scenario-2"}, res.IDs())
	got, ok := res.Get("scenario-2")
	require.True(t, ok)
	assert.Equal(t, "9401.80", got.ClassificationKey)
}

func TestCompareScenarios_LaneDoesNotOverrideExplicitCosts(t *testing.T) {
	e := NewEngine()
	sc := scenario("x", "9401.80")
	sc.TradeLane = "hcmc-la"
	sc.Input.Shipping = dec("5")

	res := e.CompareScenarios([]domain.Scenario{sc})
	require.Equal(t, 1, res.Len())
	assert.True(t, res.Entries[0].Breakdown.TaxableBase.Equal(dec("1005")))
}

func TestCompareScenarios_AboveCapWarns(t *testing.T) {
	e := NewEngine()
	log := &recordingLogger{}
	e.SetLogger(log)

	res := e.CompareScenarios([]domain.Scenario{
		scenario("1", "61"), scenario("2", "62"), scenario("3", "85"), scenario("4", "94"),
	})
	assert.Equal(t, 4, res.Len())
	assert.Len(t, log.warnings, 1)
}

func TestCompareScenarios_Empty(t *testing.T) {
	e := NewEngine()
	res := e.CompareScenarios(nil)
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Len())
	assert.Empty(t, res.Scaling.DutyAmount)

	res = e.CompareScenarios([]domain.Scenario{scenario("a", "")})
	assert.Equal(t, 0, res.Len())
}

func TestWithout(t *testing.T) {
	e := NewEngine()
	original := e.CompareScenarios([]domain.Scenario{
		scenario("a", "61"), scenario("b", "85"), scenario("c", "94"),
	})

	trimmed := Without(original, "a")
	assert.Equal(t, []string{"b", "c"}, trimmed.IDs())
	assert.Equal(t, []string{"a", "b", "c"}, original.IDs())
	// electronics is now the largest duty
	assert.True(t, trimmed.Scaling.DutyAmount[0].Equal(dec("100")))

	unchanged := Without(original, "missing")
	assert.Equal(t, original.IDs(), unchanged.IDs())

	assert.Equal(t, 0, Without(nil, "a").Len())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"all zero", []string{"0", "0", "0"}, []string{"0", "0", "0"}},
		{"scaled", []string{"50", "100", "25"}, []string{"50", "100", "25"}},
		{"fractional", []string{"1", "4"}, []string{"25", "100"}},
		{"negative max", []string{"-1", "-2"}, []string{"0", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]decimal.Decimal, len(tt.in))
			for i, s := range tt.in {
				in[i] = dec(s)
			}
			got := Normalize(in)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.True(t, got[i].Equal(dec(w)), "index %d: got %s want %s", i, got[i], w)
			}
		})
	}
}
