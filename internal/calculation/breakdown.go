package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// ComputeCostBreakdown computes duty, VAT, fees, landed cost and the what-if savings
// split for a single input.
//
// VAT is charged on the duty-inclusive value. The what-if duty is the current duty
// scaled by NewDutyRateFactor percent. Negative rates are honored literally.
func ComputeCostBreakdown(in domain.TariffInput) domain.CostBreakdownResult {
	taxableBase := in.BaseValue.Add(in.Shipping).Add(in.Insurance)

	dutyAmount := percentOf(taxableBase, in.DutyRatePercent)
	vatAmount := percentOf(taxableBase.Add(dutyAmount), in.VATPercent)
	otherFeesAmount := percentOf(taxableBase, in.OtherFeesPercent)
	totalLandedCost := taxableBase.Add(dutyAmount).Add(vatAmount).Add(otherFeesAmount)

	var perUnit decimal.NullDecimal
	if in.Quantity.GreaterThan(decimal.Zero) {
		perUnit = decimal.NewNullDecimal(totalLandedCost.Div(in.Quantity))
	}

	newDutyAmount := percentOf(percentOf(taxableBase, in.DutyRatePercent), in.NewDutyRateFactor)
	potentialSavings := dutyAmount.Sub(newDutyAmount)
	splitFraction := in.SavingsSplitPercent.Div(decimalHundred)
	consumerSavings := potentialSavings.Mul(splitFraction)
	reinvestedSavings := potentialSavings.Mul(decimalOne.Sub(splitFraction))

	marginImpact := decimal.Zero
	if !taxableBase.IsZero() {
		marginImpact = dutyAmount.Div(taxableBase).Mul(decimalHundred).Neg()
	}

	return domain.CostBreakdownResult{
		TaxableBase:           taxableBase,
		DutyAmount:            dutyAmount,
		VATAmount:             vatAmount,
		OtherFeesAmount:       otherFeesAmount,
		TotalLandedCost:       totalLandedCost,
		LandedCostPerUnit:     perUnit,
		NewDutyAmount:         newDutyAmount,
		PotentialSavings:      potentialSavings,
		ConsumerSavings:       consumerSavings,
		ReinvestedSavings:     reinvestedSavings,
		LandedCostAfterChange: totalLandedCost.Sub(potentialSavings),
		MarginImpactPercent:   marginImpact,
	}
}
