package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

func breakdownCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Calculate landed cost and what-if duty savings for one shipment",
		Long: `Calculate duty, VAT, other fees and total landed cost for one shipment, plus the
savings from scaling the duty rate by --factor percent.

The duty rate comes from --duty-rate, or is looked up from an HS code (--hs) or a
sector id (--sector) in the rate table.`,
		Example: `  tariffcalc breakdown --base 25000 --quantity 5000 --hs 6109.10 --lane hcmc-la
  tariffcalc breakdown --base 10000 --duty-rate 8.2 --factor 50 --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			var in domain.TariffInput
			err = decimalFlags(cmd, map[string]*decimal.Decimal{
				"base":      &in.BaseValue,
				"quantity":  &in.Quantity,
				"shipping":  &in.Shipping,
				"insurance": &in.Insurance,
				"duty-rate": &in.DutyRatePercent,
				"vat":       &in.VATPercent,
				"fees":      &in.OtherFeesPercent,
				"factor":    &in.NewDutyRateFactor,
				"split":     &in.SavingsSplitPercent,
			})
			if err != nil {
				return err
			}

			if laneID, _ := cmd.Flags().GetString("lane"); laneID != "" {
				table := eng.Rates.Table()
				lane, ok := table.Lane(laneID)
				if !ok {
					return fmt.Errorf("unknown trade lane %q", laneID)
				}
				if !cmd.Flags().Changed("shipping") {
					in.Shipping = lane.Shipping
				}
				if !cmd.Flags().Changed("insurance") {
					in.Insurance = lane.Insurance
				}
			}

			if err := config.ValidateTariffInput(&in); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			hs, _ := cmd.Flags().GetString("hs")
			sector, _ := cmd.Flags().GetString("sector")
			key := strings.TrimSpace(hs + sector)

			report := eng.NewReport(reportTitle(cmd, "Landed Cost Breakdown"))
			bd := eng.BreakdownFor(key, in)
			report.Breakdown = &bd
			return emit(cmd, report)
		},
	}

	cmd.Flags().String("base", "0", "goods value in USD")
	cmd.Flags().String("quantity", "1", "number of units")
	cmd.Flags().String("shipping", "0", "shipping cost in USD")
	cmd.Flags().String("insurance", "0", "insurance cost in USD")
	cmd.Flags().String("duty-rate", "0", "duty rate percent")
	cmd.Flags().String("vat", domain.DefaultVATPercent.String(), "VAT percent")
	cmd.Flags().String("fees", domain.DefaultOtherFeesPercent.String(), "other fees percent")
	cmd.Flags().String("factor", domain.DefaultNewDutyRateFactor.String(), "proposed duty as a percent of the current duty")
	cmd.Flags().String("split", domain.DefaultSavingsSplitPercent.String(), "percent of savings passed to consumers")
	cmd.Flags().String("hs", "", "HS code used to look up the duty rate")
	cmd.Flags().String("sector", "", "sector id used to look up the duty rate")
	cmd.Flags().String("lane", "", "trade lane preset for shipping and insurance")
	cmd.MarkFlagsMutuallyExclusive("hs", "sector", "duty-rate")
	addOutputFlags(cmd)
	return cmd
}
