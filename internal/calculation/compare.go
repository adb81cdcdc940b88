package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// CompareScenarios calculates every eligible scenario and returns entries in input
// order. Ineligible scenarios are skipped without error. The comparison cap is a
// caller convention: more than domain.MaxScenarios only logs a warning.
func (e *Engine) CompareScenarios(scenarios []domain.Scenario) *domain.ComparisonResult {
	if len(scenarios) > domain.MaxScenarios {
		e.Logger.Warnf("comparing %d scenarios, callers normally cap at %d", len(scenarios), domain.MaxScenarios)
	}

	ids := scenarioIDs(scenarios)
	result := &domain.ComparisonResult{Entries: make([]domain.ScenarioResult, 0, len(scenarios))}
	for i := range scenarios {
		sc := scenarios[i]
		id := ids[i]
		if !sc.IsEligible() {
			e.Logger.Debugf("skipping scenario %s: needs classification key, base value > 0 and quantity > 0", id)
			continue
		}

		rate := e.scenarioRate(&sc)
		in := e.applyTradeLane(sc.TradeLane, sc.Input)
		in.DutyRatePercent = rate.RatePercent

		name := sc.Name
		if name == "" {
			name = id
		}
		result.Entries = append(result.Entries, domain.ScenarioResult{
			ScenarioID:        id,
			Name:              name,
			ClassificationKey: sc.ClassificationKey,
			Incoterm:          sc.Incoterm,
			DutyRate:          rate,
			Breakdown:         ComputeCostBreakdown(in),
		})
	}

	result.Scaling = ScaleEntries(result.Entries)
	e.Logger.Debugf("compared %d of %d scenarios", len(result.Entries), len(scenarios))
	return result
}

// scenarioIDs returns the id of each scenario, naming unnamed ones "scenario-N"
// after their position. A generated id never repeats an explicit one.
func scenarioIDs(scenarios []domain.Scenario) []string {
	taken := make(map[string]bool, len(scenarios))
	for _, sc := range scenarios {
		if sc.ID != "" {
			taken[sc.ID] = true
		}
	}
	ids := make([]string, len(scenarios))
	for i, sc := range scenarios {
		if sc.ID != "" {
			ids[i] = sc.ID
			continue
		}
		n := i + 1
		id := fmt.Sprintf("scenario-%d", n)
		for taken[id] {
			n++
			id = fmt.Sprintf("scenario-%d", n)
		}
		taken[id] = true
		ids[i] = id
	}
	return ids
}

func (e *Engine) scenarioRate(sc *domain.Scenario) domain.DutyRate {
	if sc.DutyRateOverride != nil {
		return domain.DutyRate{RatePercent: *sc.DutyRateOverride, Source: domain.RateSourceOverride}
	}
	return e.Rates.Resolve(sc.ClassificationKey)
}

// applyTradeLane fills shipping and insurance from a lane preset when both are unset.
func (e *Engine) applyTradeLane(laneID string, in domain.TariffInput) domain.TariffInput {
	if laneID == "" || !in.Shipping.IsZero() || !in.Insurance.IsZero() {
		return in
	}
	table := e.Rates.Table()
	lane, ok := table.Lane(laneID)
	if !ok {
		e.Logger.Warnf("unknown trade lane %q", laneID)
		return in
	}
	in.Shipping = lane.Shipping
	in.Insurance = lane.Insurance
	return in
}

// Without returns a new comparison without the given scenario. The input is not modified.
func Without(result *domain.ComparisonResult, id string) *domain.ComparisonResult {
	out := &domain.ComparisonResult{Entries: []domain.ScenarioResult{}}
	if result == nil {
		out.Scaling = ScaleEntries(out.Entries)
		return out
	}
	for _, e := range result.Entries {
		if e.ScenarioID != id {
			out.Entries = append(out.Entries, e)
		}
	}
	out.Scaling = ScaleEntries(out.Entries)
	return out
}

// ScaleEntries computes chart bar widths for a set of entries.
func ScaleEntries(entries []domain.ScenarioResult) domain.ChartScaling {
	duty := make([]decimal.Decimal, len(entries))
	total := make([]decimal.Decimal, len(entries))
	margin := make([]decimal.Decimal, len(entries))
	for i, e := range entries {
		duty[i] = e.Breakdown.DutyAmount
		total[i] = e.Breakdown.TotalLandedCost
		margin[i] = e.Breakdown.MarginImpactPercent.Abs()
	}
	return domain.ChartScaling{
		DutyAmount:      Normalize(duty),
		TotalLandedCost: Normalize(total),
		MarginImpact:    Normalize(margin),
	}
}

// Normalize maps each value to value / max(values) * 100. When the maximum is
// zero or negative every percentage is zero.
func Normalize(values []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	if len(values) == 0 {
		return out
	}
	maxValue := decimal.Max(values[0], values[1:]...)
	for i, v := range values {
		if maxValue.LessThanOrEqual(decimal.Zero) {
			out[i] = decimal.Zero
			continue
		}
		out[i] = v.Div(maxValue).Mul(decimalHundred)
	}
	return out
}
