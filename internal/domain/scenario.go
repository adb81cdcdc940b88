package domain

import (
	"github.com/shopspring/decimal"
)

// MaxScenarios is the comparison set cap enforced by callers (CLI, HTTP, config).
const MaxScenarios = 3

// Incoterms accepted on a scenario. They are informational and do not change the math.
var Incoterms = []string{"FOB", "CIF", "EXW", "DDP", "CFR"}

// Scenario is a named, independently configured tariff calculation.
type Scenario struct {
	ID                string `yaml:"id" json:"id"`
	Name              string `yaml:"name" json:"name"`
	ClassificationKey string `yaml:"classification_key" json:"classification_key"` // HS code or sector id
	Description       string `yaml:"description,omitempty" json:"description,omitempty"`
	Incoterm          string `yaml:"incoterm,omitempty" json:"incoterm,omitempty"`
	TradeLane         string `yaml:"trade_lane,omitempty" json:"trade_lane,omitempty"`

	// DutyRateOverride bypasses the rate table when set.
	DutyRateOverride *decimal.Decimal `yaml:"duty_rate_override,omitempty" json:"duty_rate_override,omitempty"`

	Input TariffInput `yaml:"input" json:"input"`
}

// IsEligible reports whether the scenario has enough data to be calculated.
func (s *Scenario) IsEligible() bool {
	return s.ClassificationKey != "" &&
		s.Input.BaseValue.GreaterThan(decimal.Zero) &&
		s.Input.Quantity.GreaterThan(decimal.Zero)
}

// ScenarioResult is the comparison entry for one eligible scenario.
type ScenarioResult struct {
	ScenarioID        string              `json:"scenario_id"`
	Name              string              `json:"name"`
	ClassificationKey string              `json:"classification_key"`
	Incoterm          string              `json:"incoterm,omitempty"`
	DutyRate          DutyRate            `json:"duty_rate"`
	Breakdown         CostBreakdownResult `json:"breakdown"`
}

// ChartScaling holds bar widths (0-100) aligned with ComparisonResult.Entries.
type ChartScaling struct {
	DutyAmount      []decimal.Decimal `json:"duty_amount"`
	TotalLandedCost []decimal.Decimal `json:"total_landed_cost"`
	MarginImpact    []decimal.Decimal `json:"margin_impact"`
}

// ComparisonResult is created fresh for every comparison and never mutated afterwards.
type ComparisonResult struct {
	Entries []ScenarioResult `json:"entries"`
	Scaling ChartScaling     `json:"scaling"`
}

// Len returns the number of compared scenarios.
func (cr *ComparisonResult) Len() int {
	if cr == nil {
		return 0
	}
	return len(cr.Entries)
}

// Get returns the entry for a scenario id.
func (cr *ComparisonResult) Get(id string) (ScenarioResult, bool) {
	if cr == nil {
		return ScenarioResult{}, false
	}
	for _, e := range cr.Entries {
		if e.ScenarioID == id {
			return e, true
		}
	}
	return ScenarioResult{}, false
}

// IDs returns scenario ids in display order.
func (cr *ComparisonResult) IDs() []string {
	if cr == nil {
		return nil
	}
	ids := make([]string, 0, len(cr.Entries))
	for _, e := range cr.Entries {
		ids = append(ids, e.ScenarioID)
	}
	return ids
}
