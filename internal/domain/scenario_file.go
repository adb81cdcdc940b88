package domain

// ScenarioFile is the YAML document accepted by `tariffcalc compare` and the config loader.
type ScenarioFile struct {
	Title string `yaml:"title"`

	// Rates replaces the built-in rate table when present.
	Rates *RateTable `yaml:"rates,omitempty"`

	Scenarios  []Scenario       `yaml:"scenarios"`
	Projection *ProjectionInput `yaml:"projection,omitempty"`
	Impact     *ImpactInput     `yaml:"impact,omitempty"`
}
