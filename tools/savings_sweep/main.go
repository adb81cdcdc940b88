package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// Sweeps the new duty rate factor from 0 to 100 for every scenario in a file and
// prints potential savings and landed cost after the change as CSV.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: savings_sweep <scenario-file>")
		return
	}
	file, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calculation.NewEngine()
	if file.Rates != nil {
		engine = calculation.NewEngineWithRates(*file.Rates)
	}

	base := engine.CompareScenarios(file.Scenarios)
	if base.Len() == 0 {
		fmt.Println("no eligible scenarios")
		return
	}

	header := "Factor"
	for i := range base.Entries {
		header += fmt.Sprintf(",S%d_Savings,S%d_LandedAfter", i+1, i+1)
	}
	fmt.Println(header)

	for factor := int64(0); factor <= 100; factor += 10 {
		scenarios := make([]domain.Scenario, len(file.Scenarios))
		copy(scenarios, file.Scenarios)
		for i := range scenarios {
			scenarios[i].Input.NewDutyRateFactor = decimal.NewFromInt(factor)
		}
		res := engine.CompareScenarios(scenarios)

		row := fmt.Sprintf("%d", factor)
		for _, e := range res.Entries {
			row += fmt.Sprintf(",%s,%s", e.Breakdown.PotentialSavings.StringFixed(2), e.Breakdown.LandedCostAfterChange.StringFixed(2))
		}
		fmt.Println(row)
	}

	rec := calculation.Recommend(base)
	fmt.Printf("\nLowest per-unit cost: %s (%s per unit)\n", rec.Name, rec.LandedCostPerUnit.StringFixed(2))
}
