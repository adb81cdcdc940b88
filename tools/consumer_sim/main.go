package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// Prints the reference consumer simulation: $100 base, 10% -> 5% tariff,
// 2% growth, 5 years, half of the savings passed through.
func main() {
	proj := calculation.ProjectMultiYear(domain.ProjectionInput{
		BasePrice:            decimal.NewFromInt(100),
		CurrentTariffPercent: decimal.NewFromInt(10),
		NewTariffPercent:     decimal.NewFromInt(5),
		AnnualGrowthPercent:  decimal.NewFromInt(2),
		YearCount:            5,
		ConsumerPassThrough:  decimal.RequireFromString("0.5"),
	})

	out, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
