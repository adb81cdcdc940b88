package domain

import (
	"github.com/shopspring/decimal"
)

// RateRule maps an HS code prefix to a duty rate band.
type RateRule struct {
	Prefix      string          `yaml:"prefix" json:"prefix"`
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
	Label       string          `yaml:"label" json:"label"`
}

// Sector is a coarse classification with an average duty rate.
type Sector struct {
	ID          string          `yaml:"id" json:"id"`
	Name        string          `yaml:"name" json:"name"`
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
}

// HSCode is a catalog entry. RatePercent is optional; without it the prefix rules apply.
type HSCode struct {
	Code        string           `yaml:"code" json:"code"`
	Description string           `yaml:"description" json:"description"`
	RatePercent *decimal.Decimal `yaml:"rate_percent,omitempty" json:"rate_percent,omitempty"`
}

// TradeLane is a shipping/insurance preset for a route.
type TradeLane struct {
	ID        string          `yaml:"id" json:"id"`
	Name      string          `yaml:"name" json:"name"`
	Shipping  decimal.Decimal `yaml:"shipping" json:"shipping"`
	Insurance decimal.Decimal `yaml:"insurance" json:"insurance"`
}

// RateTable is the declarative classification -> duty rate configuration.
type RateTable struct {
	Name               string          `yaml:"name" json:"name"`
	DefaultRatePercent decimal.Decimal `yaml:"default_rate_percent" json:"default_rate_percent"`
	Rules              []RateRule      `yaml:"rules" json:"rules"`
	Sectors            []Sector        `yaml:"sectors" json:"sectors"`
	HSCodes            []HSCode        `yaml:"hs_codes" json:"hs_codes"`
	TradeLanes         []TradeLane     `yaml:"trade_lanes" json:"trade_lanes"`
}

// Rate sources reported on a DutyRate.
const (
	RateSourceOverride = "override"
	RateSourceSector   = "sector"
	RateSourceHSCode   = "hs_code"
	RateSourcePrefix   = "prefix"
	RateSourceDefault  = "default"
)

// DutyRate is a resolved rate and where it came from.
type DutyRate struct {
	RatePercent decimal.Decimal `json:"rate_percent"`
	Source      string          `json:"source"`
	Label       string          `json:"label,omitempty"`
}

// Lane returns the trade lane with the given id.
func (rt *RateTable) Lane(id string) (TradeLane, bool) {
	for _, l := range rt.TradeLanes {
		if l.ID == id {
			return l, true
		}
	}
	return TradeLane{}, false
}
