package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoScenarios is returned when a scenario file lists no scenarios.
	ErrNoScenarios = errors.New("no scenarios provided")
	// ErrTooManyScenarios is returned when a scenario file exceeds the comparison cap.
	ErrTooManyScenarios = errors.New("too many scenarios")
)

// InputParser handles parsing of scenario and rate table files
type InputParser struct {
	// MaxScenarios caps the comparison set (domain.MaxScenarios unless overridden).
	MaxScenarios int
	// Rates is used to check trade lanes when a file has no inline rate table.
	Rates domain.RateTable
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{
		MaxScenarios: domain.MaxScenarios,
		Rates:        calculation.DefaultRateTable(),
	}
}

// LoadFromFile loads a scenario file from YAML. Scenarios without an id get a generated one.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario file held in memory.
func (ip *InputParser) Parse(data []byte) (*domain.ScenarioFile, error) {
	var file domain.ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range file.Scenarios {
		if strings.TrimSpace(file.Scenarios[i].ID) == "" {
			file.Scenarios[i].ID = uuid.NewString()
		}
	}

	if err := ip.ValidateConfiguration(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &file, nil
}

// LoadRateTable loads and validates a standalone rate table file.
func (ip *InputParser) LoadRateTable(filename string) (*domain.RateTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var table domain.RateTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateRateTable(&table); err != nil {
		return nil, fmt.Errorf("rate table validation failed: %w", err)
	}
	return &table, nil
}

// ValidateConfiguration validates a loaded scenario file
func (ip *InputParser) ValidateConfiguration(file *domain.ScenarioFile) error {
	rates := ip.Rates
	if file.Rates != nil {
		if err := ip.ValidateRateTable(file.Rates); err != nil {
			return fmt.Errorf("rates: %w", err)
		}
		rates = *file.Rates
	}

	if len(file.Scenarios) == 0 {
		return ErrNoScenarios
	}
	limit := ip.MaxScenarios
	if limit <= 0 {
		limit = domain.MaxScenarios
	}
	if len(file.Scenarios) > limit {
		return fmt.Errorf("%w: %d provided, at most %d can be compared", ErrTooManyScenarios, len(file.Scenarios), limit)
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		if seen[sc.ID] {
			return fmt.Errorf("scenario %d: duplicate id %q", i, sc.ID)
		}
		seen[sc.ID] = true
		if err := ip.validateScenario(sc, &rates); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	if file.Projection != nil {
		if err := ValidateProjection(file.Projection); err != nil {
			return fmt.Errorf("projection validation failed: %w", err)
		}
	}
	if file.Impact != nil {
		if err := ValidateImpact(file.Impact); err != nil {
			return fmt.Errorf("impact validation failed: %w", err)
		}
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(sc *domain.Scenario, rates *domain.RateTable) error {
	if strings.TrimSpace(sc.ClassificationKey) == "" {
		return fmt.Errorf("classification key is required")
	}
	if sc.Incoterm != "" && !isIncoterm(sc.Incoterm) {
		return fmt.Errorf("incoterm must be one of %s", strings.Join(domain.Incoterms, ", "))
	}
	if sc.TradeLane != "" {
		if _, ok := rates.Lane(sc.TradeLane); !ok {
			return fmt.Errorf("unknown trade lane %q", sc.TradeLane)
		}
	}
	if sc.DutyRateOverride != nil && sc.DutyRateOverride.LessThan(decimal.Zero) {
		return fmt.Errorf("duty rate override cannot be negative")
	}
	return ValidateTariffInput(&sc.Input)
}

// ValidateTariffInput applies the form-level rules the engine itself does not enforce.
func ValidateTariffInput(in *domain.TariffInput) error {
	if in.BaseValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("base value must be positive")
	}
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("quantity must be positive")
	}
	if in.Shipping.LessThan(decimal.Zero) {
		return fmt.Errorf("shipping cannot be negative")
	}
	if in.Insurance.LessThan(decimal.Zero) {
		return fmt.Errorf("insurance cannot be negative")
	}
	if in.DutyRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("duty rate cannot be negative")
	}
	if in.VATPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("VAT percent cannot be negative")
	}
	if in.OtherFeesPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("other fees percent cannot be negative")
	}
	if in.NewDutyRateFactor.LessThan(decimal.Zero) {
		return fmt.Errorf("new duty rate factor cannot be negative")
	}
	if in.SavingsSplitPercent.LessThan(decimal.Zero) || in.SavingsSplitPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("savings split percent must be between 0 and 100")
	}
	return nil
}

// ValidateProjection checks a consumer projection request.
func ValidateProjection(p *domain.ProjectionInput) error {
	if p.BasePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("base price must be positive")
	}
	if p.YearCount < 0 || p.YearCount > 50 {
		return fmt.Errorf("year count must be between 0 and 50")
	}
	if p.ConsumerPassThrough.LessThan(decimal.Zero) || p.ConsumerPassThrough.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("consumer pass-through must be between 0 and 1")
	}
	return nil
}

// ValidateImpact checks an import value projection request.
func ValidateImpact(in *domain.ImpactInput) error {
	if in.ImportValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("import value must be positive")
	}
	if in.TariffPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("tariff percent cannot be negative")
	}
	if in.Years < 0 || in.Years > 50 {
		return fmt.Errorf("years must be between 0 and 50")
	}
	return nil
}

// ValidateRateTable checks rules, sectors and lanes for obvious mistakes.
func (ip *InputParser) ValidateRateTable(table *domain.RateTable) error {
	if table.DefaultRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("default rate cannot be negative")
	}
	for i, r := range table.Rules {
		if calculation.NormalizeHSCode(r.Prefix) == "" {
			return fmt.Errorf("rule %d: prefix is required", i)
		}
		if r.RatePercent.LessThan(decimal.Zero) {
			return fmt.Errorf("rule %d: rate cannot be negative", i)
		}
	}
	sectors := make(map[string]bool, len(table.Sectors))
	for i, s := range table.Sectors {
		id := strings.ToLower(strings.TrimSpace(s.ID))
		if id == "" {
			return fmt.Errorf("sector %d: id is required", i)
		}
		if sectors[id] {
			return fmt.Errorf("sector %d: duplicate id %q", i, s.ID)
		}
		sectors[id] = true
	}
	for i, c := range table.HSCodes {
		if calculation.NormalizeHSCode(c.Code) == "" {
			return fmt.Errorf("hs code %d: code is required", i)
		}
	}
	for i, l := range table.TradeLanes {
		if l.ID == "" {
			return fmt.Errorf("trade lane %d: id is required", i)
		}
		if l.Shipping.LessThan(decimal.Zero) || l.Insurance.LessThan(decimal.Zero) {
			return fmt.Errorf("trade lane %s: costs cannot be negative", l.ID)
		}
	}
	return nil
}

func isIncoterm(term string) bool {
	for _, t := range domain.Incoterms {
		if strings.EqualFold(t, term) {
			return true
		}
	}
	return false
}

// CreateExampleConfiguration returns a scenario file comparing three sourcing options
func (ip *InputParser) CreateExampleConfiguration() *domain.ScenarioFile {
	d := decimal.RequireFromString
	input := func(base, qty string) domain.TariffInput {
		return domain.TariffInput{
			BaseValue:           d(base),
			Quantity:            d(qty),
			VATPercent:          domain.DefaultVATPercent,
			OtherFeesPercent:    domain.DefaultOtherFeesPercent,
			NewDutyRateFactor:   d("50"),
			SavingsSplitPercent: domain.DefaultSavingsSplitPercent,
		}
	}

	return &domain.ScenarioFile{
		Title: "Vietnam sourcing comparison",
		Scenarios: []domain.Scenario{
			{
				ID:                "cotton-tees",
				Name:              "Cotton T-shirts",
				ClassificationKey: "6109.10",
				Incoterm:          "FOB",
				TradeLane:         "hcmc-la",
				Input:             input("25000", "5000"),
			},
			{
				ID:                "smartphones",
				Name:              "Smartphones",
				ClassificationKey: "8517.12",
				Incoterm:          "CIF",
				Input:             input("120000", "400"),
			},
			{
				ID:                "office-chairs",
				Name:              "Office chairs",
				ClassificationKey: "9401.80",
				Incoterm:          "DDP",
				TradeLane:         "hcmc-la",
				Input:             input("18000", "300"),
			},
		},
		Projection: &domain.ProjectionInput{
			BasePrice:            d("100"),
			CurrentTariffPercent: d("10"),
			NewTariffPercent:     d("5"),
			AnnualGrowthPercent:  d("2"),
			YearCount:            5,
			ConsumerPassThrough:  d("0.5"),
		},
		Impact: &domain.ImpactInput{
			ImportValue:         d("1000000"),
			TariffPercent:       d("10"),
			AnnualGrowthPercent: d("5"),
			Years:               5,
		},
	}
}
