package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

func impactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "impact",
		Short:   "Project import value and tariff cost over several years",
		Example: `  tariffcalc impact --value 1000000 --tariff 10 --growth 5 --years 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			var in domain.ImpactInput
			err = decimalFlags(cmd, map[string]*decimal.Decimal{
				"value":  &in.ImportValue,
				"tariff": &in.TariffPercent,
				"growth": &in.AnnualGrowthPercent,
			})
			if err != nil {
				return err
			}
			in.Years, _ = cmd.Flags().GetInt("years")

			if err := config.ValidateImpact(&in); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			report := eng.NewReport(reportTitle(cmd, "Import Value Projection"))
			report.Impact = &domain.ImpactReport{Input: in, Projection: eng.ProjectImpact(in)}
			return emit(cmd, report)
		},
	}

	cmd.Flags().String("value", "1000000", "annual import value in USD")
	cmd.Flags().String("tariff", "10", "tariff percent")
	cmd.Flags().String("growth", "5", "annual import value growth percent")
	cmd.Flags().Int("years", 5, "number of years after the base year")
	addOutputFlags(cmd)
	return cmd
}
