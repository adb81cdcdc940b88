package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/domain"
	"github.com/vntrade/tariff-calculator/internal/output"
)

// decimalFlag reads a string flag as a decimal.
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return d, nil
}

// decimalFlags reads several decimal flags into the given targets.
func decimalFlags(cmd *cobra.Command, targets map[string]*decimal.Decimal) error {
	for name, target := range targets {
		d, err := decimalFlag(cmd, name)
		if err != nil {
			return err
		}
		*target = d
	}
	return nil
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "console", "output format ("+formatHelp()+")")
	cmd.Flags().StringP("output-dir", "o", "", "write the report to a timestamped file in this directory")
	cmd.Flags().String("title", "", "report title")
}

func formatHelp() string {
	return strings.Join(output.AvailableFormatterNames(), ", ") + ", all"
}

// emit renders report to stdout, or to files when --output-dir is set.
func emit(cmd *cobra.Command, report *domain.Report) error {
	format, _ := cmd.Flags().GetString("format")
	dir, _ := cmd.Flags().GetString("output-dir")

	if dir != "" {
		files, err := output.GenerateReport(report, format, dir)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
		}
		return nil
	}

	if output.NormalizeFormatName(format) == "all" {
		return fmt.Errorf("format \"all\" requires --output-dir")
	}
	out, err := output.Render(report, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func reportTitle(cmd *cobra.Command, def string) string {
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		return title
	}
	return def
}
