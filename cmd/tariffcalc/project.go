package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

func projectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Short:   "Project consumer prices before and after a tariff change",
		Example: `  tariffcalc project --base-price 100 --current 10 --new 5 --growth 2 --years 5 --pass-through 0.5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			var in domain.ProjectionInput
			err = decimalFlags(cmd, map[string]*decimal.Decimal{
				"base-price":   &in.BasePrice,
				"current":      &in.CurrentTariffPercent,
				"new":          &in.NewTariffPercent,
				"growth":       &in.AnnualGrowthPercent,
				"pass-through": &in.ConsumerPassThrough,
			})
			if err != nil {
				return err
			}
			in.YearCount, _ = cmd.Flags().GetInt("years")

			if err := config.ValidateProjection(&in); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			report := eng.NewReport(reportTitle(cmd, "Consumer Price Projection"))
			report.Consumer = &domain.ConsumerReport{Input: in, Projection: eng.ProjectMultiYear(in)}
			return emit(cmd, report)
		},
	}

	cmd.Flags().String("base-price", "100", "retail base price in year 1")
	cmd.Flags().String("current", "10", "current tariff percent")
	cmd.Flags().String("new", "5", "proposed tariff percent")
	cmd.Flags().String("growth", "2", "annual base price growth percent")
	cmd.Flags().Int("years", 5, "number of years to simulate")
	cmd.Flags().String("pass-through", "0.5", "fraction of tariff savings passed to consumers (0-1)")
	addOutputFlags(cmd)
	return cmd
}
