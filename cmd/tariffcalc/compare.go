package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/domain"
	"github.com/vntrade/tariff-calculator/internal/output"
	"go.uber.org/zap"
)

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Compare up to three sourcing scenarios from a YAML file",
		Long: `Compare landed costs for up to three scenarios described in a YAML file. The file
may also carry an inline rate table, a consumer projection and an import value
projection, which are added to the report.

Use --example PATH to write a starter file.`,
		Example: `  tariffcalc compare --example scenarios.yaml
  tariffcalc compare scenarios.yaml --format html --output-dir reports`,
		Args: func(cmd *cobra.Command, args []string) error {
			if example, _ := cmd.Flags().GetString("example"); example != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if example, _ := cmd.Flags().GetString("example"); example != "" {
				if err := output.SaveScenarioFile(config.NewInputParser().CreateExampleConfiguration(), example); err != nil {
					return fmt.Errorf("failed to write example: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example scenarios written to %s\n", example)
				return nil
			}

			eng, err := a.engine()
			if err != nil {
				return err
			}

			parser := config.NewInputParser()
			parser.MaxScenarios = a.settings.MaxScenarios
			parser.Rates = eng.Rates.Table()
			file, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			if file.Rates != nil {
				eng = calculation.NewEngineWithRates(*file.Rates)
				eng.SetLogger(a.logger.Sugar())
			}

			title := file.Title
			if title == "" {
				title = "Scenario Comparison"
			}
			report := eng.NewReport(reportTitle(cmd, title))
			report.Comparison = eng.CompareScenarios(file.Scenarios)
			if file.Projection != nil {
				report.Consumer = &domain.ConsumerReport{Input: *file.Projection, Projection: eng.ProjectMultiYear(*file.Projection)}
			}
			if file.Impact != nil {
				report.Impact = &domain.ImpactReport{Input: *file.Impact, Projection: eng.ProjectImpact(*file.Impact)}
			}

			a.logger.Debug("compared scenarios",
				zap.String("file", args[0]),
				zap.Strings("ids", report.Comparison.IDs()))
			return emit(cmd, report)
		},
	}

	cmd.Flags().String("example", "", "write an example scenario file to this path and exit")
	addOutputFlags(cmd)
	return cmd
}
