package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baseInput() domain.TariffInput {
	return domain.TariffInput{
		BaseValue:           dec("100"),
		Quantity:            dec("1"),
		DutyRatePercent:     dec("10"),
		NewDutyRateFactor:   dec("100"),
		SavingsSplitPercent: dec("50"),
	}
}

func TestComputeCostBreakdown_ReferenceScenario(t *testing.T) {
	res := ComputeCostBreakdown(baseInput())

	assert.True(t, res.DutyAmount.Equal(dec("10")), "duty: %s", res.DutyAmount)
	assert.True(t, res.TotalLandedCost.Equal(dec("110")), "total: %s", res.TotalLandedCost)
	assert.True(t, res.PotentialSavings.IsZero(), "potential: %s", res.PotentialSavings)
	assert.True(t, res.ConsumerSavings.IsZero())
	assert.True(t, res.ReinvestedSavings.IsZero())

	perUnit, err := res.PerUnit()
	require.NoError(t, err)
	assert.True(t, perUnit.Equal(dec("110")))
}

func TestComputeCostBreakdown_FullCost(t *testing.T) {
	in := domain.TariffInput{
		BaseValue:           dec("10000"),
		Quantity:            dec("100"),
		Shipping:            dec("1200"),
		Insurance:           dec("150"),
		DutyRatePercent:     dec("8.2"),
		VATPercent:          dec("10"),
		OtherFeesPercent:    dec("2"),
		NewDutyRateFactor:   dec("50"),
		SavingsSplitPercent: dec("40"),
	}
	res := ComputeCostBreakdown(in)

	// taxable 11350, duty 930.7, vat (11350+930.7)*10% = 1228.07, fees 227
	assert.True(t, res.TaxableBase.Equal(dec("11350")))
	assert.True(t, res.DutyAmount.Equal(dec("930.7")), "duty: %s", res.DutyAmount)
	assert.True(t, res.VATAmount.Equal(dec("1228.07")), "vat: %s", res.VATAmount)
	assert.True(t, res.OtherFeesAmount.Equal(dec("227")), "fees: %s", res.OtherFeesAmount)
	assert.True(t, res.TotalLandedCost.Equal(dec("13735.77")), "total: %s", res.TotalLandedCost)

	assert.True(t, res.NewDutyAmount.Equal(dec("465.35")), "new duty: %s", res.NewDutyAmount)
	assert.True(t, res.PotentialSavings.Equal(dec("465.35")))
	assert.True(t, res.ConsumerSavings.Equal(dec("186.14")), "consumer: %s", res.ConsumerSavings)
	assert.True(t, res.ReinvestedSavings.Equal(dec("279.21")), "reinvested: %s", res.ReinvestedSavings)
	assert.True(t, res.LandedCostAfterChange.Equal(dec("13270.42")))
	assert.True(t, res.MarginImpactPercent.Equal(dec("-8.2")), "margin: %s", res.MarginImpactPercent)

	perUnit, err := res.PerUnit()
	require.NoError(t, err)
	assert.True(t, perUnit.Equal(dec("137.3577")))
}

func TestComputeCostBreakdown_Invariants(t *testing.T) {
	values := []string{"0", "0.5", "7", "25", "100", "1234.56"}
	splits := []string{"0", "12.5", "33", "50", "99.9", "100"}

	for _, v := range values {
		for _, split := range splits {
			in := domain.TariffInput{
				BaseValue:           dec(v),
				Quantity:            dec("3"),
				Shipping:            dec(v),
				Insurance:           dec("1"),
				DutyRatePercent:     dec(v),
				VATPercent:          dec("10"),
				OtherFeesPercent:    dec("2"),
				NewDutyRateFactor:   dec("30"),
				SavingsSplitPercent: dec(split),
			}
			res := ComputeCostBreakdown(in)

			sum := res.TaxableBase.Add(res.DutyAmount).Add(res.VATAmount).Add(res.OtherFeesAmount)
			assert.True(t, res.TotalLandedCost.Equal(sum), "total mismatch for %s/%s", v, split)
			assert.True(t, res.TotalLandedCost.GreaterThanOrEqual(res.TaxableBase), "total below taxable for %s", v)

			parts := res.ConsumerSavings.Add(res.ReinvestedSavings)
			assert.True(t, parts.Sub(res.PotentialSavings).Abs().LessThan(dec("0.000000001")),
				"split %s: %s + %s != %s", split, res.ConsumerSavings, res.ReinvestedSavings, res.PotentialSavings)
		}
	}
}

func TestComputeCostBreakdown_UndefinedPerUnit(t *testing.T) {
	for _, q := range []string{"0", "-2"} {
		in := baseInput()
		in.Quantity = dec(q)
		res := ComputeCostBreakdown(in)

		assert.False(t, res.LandedCostPerUnit.Valid, "quantity %s", q)
		_, err := res.PerUnit()
		assert.ErrorIs(t, err, domain.ErrUndefinedPerUnit)
		assert.True(t, res.TotalLandedCost.Equal(dec("110")))
	}
}

func TestComputeCostBreakdown_NegativeRatesHonored(t *testing.T) {
	in := baseInput()
	in.DutyRatePercent = dec("-5")
	res := ComputeCostBreakdown(in)

	assert.True(t, res.DutyAmount.Equal(dec("-5")))
	assert.True(t, res.TotalLandedCost.Equal(dec("95")))
}

func TestComputeCostBreakdown_ZeroTaxableBase(t *testing.T) {
	res := ComputeCostBreakdown(domain.TariffInput{Quantity: dec("1"), DutyRatePercent: dec("10")})
	assert.True(t, res.MarginImpactPercent.IsZero())
	assert.True(t, res.TotalLandedCost.IsZero())
}

func TestComputeCostBreakdown_Idempotent(t *testing.T) {
	in := baseInput()
	in.Shipping = dec("12.34")
	in.VATPercent = dec("7.5")
	in.NewDutyRateFactor = dec("33.3")

	first := ComputeCostBreakdown(in)
	second := ComputeCostBreakdown(in)
	assert.Equal(t, first, second)
}
