package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

var (
	decimalHundred = decimal.NewFromInt(100)
	decimalOne     = decimal.NewFromInt(1)
)

// percentOf returns amount * pct / 100.
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(decimalHundred)
}

// Engine runs tariff calculations. It holds no per-call state and is safe for
// concurrent use once constructed.
type Engine struct {
	Rates  *RateResolver
	Logger Logger
}

// NewEngine creates an engine backed by the built-in rate table.
func NewEngine() *Engine {
	return NewEngineWithRates(DefaultRateTable())
}

// NewEngineWithRates creates an engine backed by the given rate table.
func NewEngineWithRates(table domain.RateTable) *Engine {
	return &Engine{
		Rates:  NewRateResolver(table),
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// NewReport returns an empty report stamped with the current time.
func (e *Engine) NewReport(title string) *domain.Report {
	return &domain.Report{Title: title, GeneratedAt: nowFunc().UTC()}
}

// CostBreakdown computes the landed cost breakdown for a single input.
func (e *Engine) CostBreakdown(in domain.TariffInput) domain.CostBreakdownResult {
	return ComputeCostBreakdown(in)
}

// ProjectMultiYear runs the consumer pass-through simulation.
func (e *Engine) ProjectMultiYear(in domain.ProjectionInput) domain.ConsumerProjection {
	return ProjectMultiYear(in)
}

// ProjectImpact runs the import value growth projection.
func (e *Engine) ProjectImpact(in domain.ImpactInput) domain.ImpactProjection {
	return ProjectImpact(in)
}

// ResolveRate resolves a classification key against the engine's rate table.
func (e *Engine) ResolveRate(key string) domain.DutyRate {
	return e.Rates.Resolve(key)
}

// BreakdownFor resolves the duty rate for key (when non-empty) and computes the breakdown.
func (e *Engine) BreakdownFor(key string, in domain.TariffInput) domain.BreakdownReport {
	report := domain.BreakdownReport{Label: key}
	if key != "" {
		rate := e.Rates.Resolve(key)
		in.DutyRatePercent = rate.RatePercent
		report.DutyRate = &rate
		e.Logger.Debugf("resolved %q to %s%% (%s)", key, rate.RatePercent.String(), rate.Source)
	}
	report.Input = in
	report.Result = ComputeCostBreakdown(in)
	return report
}
