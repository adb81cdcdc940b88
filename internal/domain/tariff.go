package domain

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUndefinedPerUnit is returned when a per-unit landed cost is requested for a
// non-positive quantity.
var ErrUndefinedPerUnit = errors.New("landed cost per unit is undefined for non-positive quantity")

// TariffInput holds the cost and rate inputs for a single landed cost calculation.
// Percentages are expressed as whole numbers (10 means 10%).
type TariffInput struct {
	BaseValue        decimal.Decimal `yaml:"base_value" json:"base_value"` // CIF/FOB cost in USD
	Quantity         decimal.Decimal `yaml:"quantity" json:"quantity"`
	Shipping         decimal.Decimal `yaml:"shipping" json:"shipping"`
	Insurance        decimal.Decimal `yaml:"insurance" json:"insurance"`
	DutyRatePercent  decimal.Decimal `yaml:"duty_rate_percent" json:"duty_rate_percent"`
	VATPercent       decimal.Decimal `yaml:"vat_percent" json:"vat_percent"`
	OtherFeesPercent decimal.Decimal `yaml:"other_fees_percent" json:"other_fees_percent"`

	// NewDutyRateFactor scales the current duty rate: 100 keeps it, 50 halves it, 0 removes it.
	NewDutyRateFactor decimal.Decimal `yaml:"new_duty_rate_factor" json:"new_duty_rate_factor"`
	// SavingsSplitPercent is the share of potential savings passed to consumers (0-100).
	SavingsSplitPercent decimal.Decimal `yaml:"savings_split_percent" json:"savings_split_percent"`
}

// CostBreakdownResult is the landed cost breakdown and what-if savings split for a TariffInput.
type CostBreakdownResult struct {
	TaxableBase     decimal.Decimal `json:"taxable_base"`
	DutyAmount      decimal.Decimal `json:"duty_amount"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	OtherFeesAmount decimal.Decimal `json:"other_fees_amount"`
	TotalLandedCost decimal.Decimal `json:"total_landed_cost"`

	// LandedCostPerUnit is invalid (null) when quantity is zero or negative.
	LandedCostPerUnit decimal.NullDecimal `json:"landed_cost_per_unit"`

	NewDutyAmount         decimal.Decimal `json:"new_duty_amount"`
	PotentialSavings      decimal.Decimal `json:"potential_savings"`
	ConsumerSavings       decimal.Decimal `json:"consumer_savings"`
	ReinvestedSavings     decimal.Decimal `json:"reinvested_savings"`
	LandedCostAfterChange decimal.Decimal `json:"landed_cost_after_change"`
	MarginImpactPercent   decimal.Decimal `json:"margin_impact_percent"`
}

// PerUnit returns the landed cost per unit or ErrUndefinedPerUnit.
func (r *CostBreakdownResult) PerUnit() (decimal.Decimal, error) {
	if !r.LandedCostPerUnit.Valid {
		return decimal.Zero, ErrUndefinedPerUnit
	}
	return r.LandedCostPerUnit.Decimal, nil
}

// ProjectionInput drives the multi-year consumer pass-through simulation.
type ProjectionInput struct {
	BasePrice            decimal.Decimal `yaml:"base_price" json:"base_price"`
	CurrentTariffPercent decimal.Decimal `yaml:"current_tariff_percent" json:"current_tariff_percent"`
	NewTariffPercent     decimal.Decimal `yaml:"new_tariff_percent" json:"new_tariff_percent"`
	AnnualGrowthPercent  decimal.Decimal `yaml:"annual_growth_percent" json:"annual_growth_percent"`
	YearCount            int             `yaml:"year_count" json:"year_count"`
	ConsumerPassThrough  decimal.Decimal `yaml:"consumer_pass_through" json:"consumer_pass_through"` // fraction, normally 0-1
}

// YearProjection is one simulated year.
type YearProjection struct {
	Year               int             `json:"year"`
	BasePrice          decimal.Decimal `json:"base_price"`
	TariffBefore       decimal.Decimal `json:"tariff_before"`
	PriceBefore        decimal.Decimal `json:"price_before"`
	TariffAfter        decimal.Decimal `json:"tariff_after"`
	PriceAfter         decimal.Decimal `json:"price_after"`
	ConsumerPriceAfter decimal.Decimal `json:"consumer_price_after"`
	ConsumerSavings    decimal.Decimal `json:"consumer_savings"`
}

// ConsumerProjection is the ordered year 1..N simulation plus its only aggregate.
type ConsumerProjection struct {
	Years                []YearProjection `json:"years"`
	TotalConsumerSavings decimal.Decimal  `json:"total_consumer_savings"`
}

// FinalYear returns the last simulated year, if any.
func (cp *ConsumerProjection) FinalYear() (YearProjection, bool) {
	if len(cp.Years) == 0 {
		return YearProjection{}, false
	}
	return cp.Years[len(cp.Years)-1], true
}

// ImpactInput drives the import value growth projection.
type ImpactInput struct {
	ImportValue         decimal.Decimal `yaml:"import_value" json:"import_value"`
	TariffPercent       decimal.Decimal `yaml:"tariff_percent" json:"tariff_percent"`
	AnnualGrowthPercent decimal.Decimal `yaml:"annual_growth_percent" json:"annual_growth_percent"`
	Years               int             `yaml:"years" json:"years"`
}

// ImpactYear is one row of the import value projection, rounded to whole dollars.
type ImpactYear struct {
	Year        int             `json:"year"`
	ImportValue decimal.Decimal `json:"import_value"`
	TariffCost  decimal.Decimal `json:"tariff_cost"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

// ImpactSummary aggregates an ImpactProjection.
type ImpactSummary struct {
	TotalTariffs         decimal.Decimal `json:"total_tariffs"`
	AverageImpactPercent decimal.Decimal `json:"average_impact_percent"`
	FinalYearCost        decimal.Decimal `json:"final_year_cost"`
	TotalValue           decimal.Decimal `json:"total_value"`
}

// ImpactProjection holds rows for year 0..Years inclusive.
type ImpactProjection struct {
	Years   []ImpactYear  `json:"years"`
	Summary ImpactSummary `json:"summary"`
}

// Defaults applied when a TariffInput field is omitted from YAML or JSON.
var (
	DefaultVATPercent          = decimal.NewFromInt(10)
	DefaultOtherFeesPercent    = decimal.NewFromInt(2)
	DefaultNewDutyRateFactor   = decimal.NewFromInt(100)
	DefaultSavingsSplitPercent = decimal.NewFromInt(50)
)

// tariffInputFields mirrors TariffInput with pointers so omitted fields can be told apart from zeros.
type tariffInputFields struct {
	BaseValue           *decimal.Decimal `yaml:"base_value" json:"base_value"`
	Quantity            *decimal.Decimal `yaml:"quantity" json:"quantity"`
	Shipping            *decimal.Decimal `yaml:"shipping" json:"shipping"`
	Insurance           *decimal.Decimal `yaml:"insurance" json:"insurance"`
	DutyRatePercent     *decimal.Decimal `yaml:"duty_rate_percent" json:"duty_rate_percent"`
	VATPercent          *decimal.Decimal `yaml:"vat_percent" json:"vat_percent"`
	OtherFeesPercent    *decimal.Decimal `yaml:"other_fees_percent" json:"other_fees_percent"`
	NewDutyRateFactor   *decimal.Decimal `yaml:"new_duty_rate_factor" json:"new_duty_rate_factor"`
	SavingsSplitPercent *decimal.Decimal `yaml:"savings_split_percent" json:"savings_split_percent"`
}

func valueOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

func (f *tariffInputFields) apply(ti *TariffInput) {
	ti.BaseValue = valueOr(f.BaseValue, decimal.Zero)
	ti.Quantity = valueOr(f.Quantity, decimal.NewFromInt(1))
	ti.Shipping = valueOr(f.Shipping, decimal.Zero)
	ti.Insurance = valueOr(f.Insurance, decimal.Zero)
	ti.DutyRatePercent = valueOr(f.DutyRatePercent, decimal.Zero)
	ti.VATPercent = valueOr(f.VATPercent, DefaultVATPercent)
	ti.OtherFeesPercent = valueOr(f.OtherFeesPercent, DefaultOtherFeesPercent)
	ti.NewDutyRateFactor = valueOr(f.NewDutyRateFactor, DefaultNewDutyRateFactor)
	ti.SavingsSplitPercent = valueOr(f.SavingsSplitPercent, DefaultSavingsSplitPercent)
}

// UnmarshalYAML fills omitted fields with the calculator defaults.
func (ti *TariffInput) UnmarshalYAML(value *yaml.Node) error {
	var aux tariffInputFields
	if err := value.Decode(&aux); err != nil {
		return err
	}
	aux.apply(ti)
	return nil
}

// UnmarshalJSON fills omitted fields with the calculator defaults.
func (ti *TariffInput) UnmarshalJSON(data []byte) error {
	var aux tariffInputFields
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	aux.apply(ti)
	return nil
}
