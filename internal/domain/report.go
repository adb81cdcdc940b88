package domain

import "time"

// BreakdownReport pairs a single calculation with its input.
type BreakdownReport struct {
	Label    string              `json:"label,omitempty"`
	DutyRate *DutyRate           `json:"duty_rate,omitempty"`
	Input    TariffInput         `json:"input"`
	Result   CostBreakdownResult `json:"result"`
}

// ConsumerReport pairs a consumer projection with its input.
type ConsumerReport struct {
	Input      ProjectionInput    `json:"input"`
	Projection ConsumerProjection `json:"projection"`
}

// ImpactReport pairs an import value projection with its input.
type ImpactReport struct {
	Input      ImpactInput      `json:"input"`
	Projection ImpactProjection `json:"projection"`
}

// Report is the envelope handed to output formatters. Sections are optional.
type Report struct {
	Title       string            `json:"title"`
	GeneratedAt time.Time         `json:"generated_at"`
	Breakdown   *BreakdownReport  `json:"breakdown,omitempty"`
	Comparison  *ComparisonResult `json:"comparison,omitempty"`
	Consumer    *ConsumerReport   `json:"consumer,omitempty"`
	Impact      *ImpactReport     `json:"impact,omitempty"`
}

// IsEmpty reports whether no section is populated.
func (r *Report) IsEmpty() bool {
	return r.Breakdown == nil && r.Comparison == nil && r.Consumer == nil && r.Impact == nil
}
