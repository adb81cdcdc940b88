package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// RankedScenario is a comparison entry with its display rank (1 = cheapest per unit).
type RankedScenario struct {
	Rank              int                 `json:"rank"`
	ScenarioID        string              `json:"scenario_id"`
	Name              string              `json:"name"`
	LandedCostPerUnit decimal.NullDecimal `json:"landed_cost_per_unit"`
	TotalLandedCost   decimal.Decimal     `json:"total_landed_cost"`
}

// RankScenarios orders entries by landed cost per unit, ascending. Entries with an
// undefined per-unit cost sort last; ties keep display order.
func RankScenarios(result *domain.ComparisonResult) []RankedScenario {
	if result == nil {
		return nil
	}
	ranks := make([]RankedScenario, 0, len(result.Entries))
	for _, e := range result.Entries {
		ranks = append(ranks, RankedScenario{
			ScenarioID:        e.ScenarioID,
			Name:              e.Name,
			LandedCostPerUnit: e.Breakdown.LandedCostPerUnit,
			TotalLandedCost:   e.Breakdown.TotalLandedCost,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i].LandedCostPerUnit, ranks[j].LandedCostPerUnit
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Valid && a.Decimal.LessThan(b.Decimal)
	})
	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks
}

// Recommendation is the cheapest scenario and how much it saves per unit over the
// most expensive one.
type Recommendation struct {
	ScenarioID        string          `json:"scenario_id"`
	Name              string          `json:"name"`
	LandedCostPerUnit decimal.Decimal `json:"landed_cost_per_unit"`
	SavingsPerUnit    decimal.Decimal `json:"savings_per_unit"`
	SavingsPercent    decimal.Decimal `json:"savings_percent"`
}

// Recommend picks the scenario with the lowest landed cost per unit.
func Recommend(result *domain.ComparisonResult) Recommendation {
	ranks := RankScenarios(result)
	if len(ranks) == 0 || !ranks[0].LandedCostPerUnit.Valid {
		return Recommendation{}
	}
	best := ranks[0]
	worst := best
	for _, r := range ranks[1:] {
		if r.LandedCostPerUnit.Valid {
			worst = r
		}
	}
	savings := worst.LandedCostPerUnit.Decimal.Sub(best.LandedCostPerUnit.Decimal)
	pct := decimal.Zero
	if !worst.LandedCostPerUnit.Decimal.IsZero() {
		pct = savings.Div(worst.LandedCostPerUnit.Decimal).Mul(decimalHundred)
	}
	return Recommendation{
		ScenarioID:        best.ScenarioID,
		Name:              best.Name,
		LandedCostPerUnit: best.LandedCostPerUnit.Decimal,
		SavingsPerUnit:    savings,
		SavingsPercent:    pct,
	}
}
