package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/domain"
	"github.com/vntrade/tariff-calculator/pkg/money"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func ratesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the duty rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), eng.Rates.Table())
			}
			writeRateTable(cmd.OutOrStdout(), eng.Rates)
			return nil
		},
	}
	cmd.PersistentFlags().Bool("json", false, "print JSON instead of tables")
	cmd.AddCommand(ratesLookupCmd(a), ratesSearchCmd(a))
	return cmd
}

func ratesLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup KEY",
		Short:   "Resolve the duty rate for an HS code or sector id",
		Example: "  tariffcalc rates lookup 6109.10\n  tariffcalc rates lookup electronics",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			rate := eng.ResolveRate(args[0])
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), rate)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s%% (%s)\n", args[0], rate.RatePercent.StringFixed(2), describeRate(rate))
			return nil
		},
	}
}

func ratesSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search HS codes by code or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			codes := eng.Rates.Search(args[0], limit)
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), codes)
			}
			if len(codes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No HS codes match %q.\n", args[0])
				return nil
			}
			t := newTable("Code", "Description", "Duty rate")
			for _, c := range codes {
				rate := eng.ResolveRate(c.Code)
				t.Row(c.Code, c.Description, money.FormatPercent(rate.RatePercent, 2))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
	cmd.Flags().Int("limit", calculation.DefaultSearchLimit, "maximum number of results")
	return cmd
}

func describeRate(rate domain.DutyRate) string {
	if rate.Label == "" {
		return rate.Source
	}
	return rate.Source + ": " + rate.Label
}

func writeRateTable(w io.Writer, rr *calculation.RateResolver) {
	tbl := rr.Table()
	if tbl.Name != "" {
		fmt.Fprintln(w, headerStyle.Render(tbl.Name))
	}
	fmt.Fprintf(w, "Default duty rate: %s%%\n\n", tbl.DefaultRatePercent.StringFixed(2))

	if len(tbl.Sectors) > 0 {
		t := newTable("Sector", "Name", "Duty rate")
		for _, s := range tbl.Sectors {
			t.Row(s.ID, s.Name, money.FormatPercent(s.RatePercent, 2))
		}
		fmt.Fprintln(w, t.String())
	}

	if rules := rr.Rules(); len(rules) > 0 {
		t := newTable("HS prefix", "Label", "Duty rate")
		for _, r := range rules {
			t.Row(r.Prefix, r.Label, money.FormatPercent(r.RatePercent, 2))
		}
		fmt.Fprintln(w, t.String())
	}

	if len(tbl.TradeLanes) > 0 {
		t := newTable("Lane", "Name", "Shipping", "Insurance")
		for _, l := range tbl.TradeLanes {
			t.Row(l.ID, l.Name, money.New(l.Shipping).Format(), money.New(l.Insurance).Format())
		}
		fmt.Fprintln(w, t.String())
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
