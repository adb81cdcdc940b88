package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vntrade/tariff-calculator/internal/domain"
)

// DefaultSearchLimit caps HS code search results when no limit is given.
const DefaultSearchLimit = 5

// DefaultRateTable returns the built-in classification table.
func DefaultRateTable() domain.RateTable {
	d := decimal.RequireFromString
	return domain.RateTable{
		Name:               "built-in",
		DefaultRatePercent: d("10"),
		Rules: []domain.RateRule{
			{Prefix: "61", RatePercent: d("16.5"), Label: "Textiles (knitted apparel)"},
			{Prefix: "62", RatePercent: d("16.5"), Label: "Textiles (woven apparel)"},
			{Prefix: "85", RatePercent: d("8.2"), Label: "Electronics"},
			{Prefix: "64", RatePercent: d("12.8"), Label: "Footwear"},
			{Prefix: "94", RatePercent: d("6.5"), Label: "Furniture"},
		},
		Sectors: []domain.Sector{
			{ID: "electronics", Name: "Electronics", RatePercent: d("8.5")},
			{ID: "textiles", Name: "Textiles", RatePercent: d("12")},
			{ID: "agrifood", Name: "Agrifood", RatePercent: d("15")},
			{ID: "machinery", Name: "Machinery", RatePercent: d("6")},
			{ID: "chemicals", Name: "Chemicals", RatePercent: d("10")},
		},
		HSCodes: []domain.HSCode{
			{Code: "6109.10", Description: "T-shirts, singlets and other vests, of cotton"},
			{Code: "6109.90", Description: "T-shirts, singlets and other vests, of other textile materials"},
			{Code: "8517.12", Description: "Smartphones and mobile phones"},
			{Code: "8517.18", Description: "Other apparatus for transmission or reception of voice, images or other data"},
			{Code: "6403.91", Description: "Footwear with outer soles of rubber, plastics, leather or composition leather"},
			{Code: "6403.99", Description: "Other footwear with outer soles of rubber, plastics, leather"},
			{Code: "9401.80", Description: "Other seats (office furniture and seating)"},
			{Code: "9401.71", Description: "Seats with metal frames, upholstered"},
			{Code: "8528.72", Description: "Reception apparatus for television, color, LCD monitors and displays"},
			{Code: "8528.73", Description: "Reception apparatus for television, color, OLED displays"},
			{Code: "6204.62", Description: "Women's or girls' trousers and shorts, of cotton"},
			{Code: "6204.69", Description: "Women's or girls' trousers and shorts, of other textile materials"},
			{Code: "8471.30", Description: "Portable automatic data processing machines, laptops"},
			{Code: "8471.41", Description: "Data processing machines comprising CPU and input/output units"},
			{Code: "9503.00", Description: "Tricycles, scooters, pedal cars and similar wheeled toys; dolls' carriages"},
			{Code: "6110.20", Description: "Jerseys, pullovers, cardigans, waistcoats, of cotton"},
			{Code: "6110.30", Description: "Jerseys, pullovers, cardigans, waistcoats, of man-made fibres"},
			{Code: "8414.51", Description: "Table, floor, wall, window, ceiling or roof fans"},
			{Code: "8414.59", Description: "Other fans"},
			{Code: "7013.49", Description: "Glassware of a kind used for table, kitchen, toilet, office"},
		},
		TradeLanes: []domain.TradeLane{
			{ID: "shanghai-hcmc", Name: "Shanghai → HCMC", Shipping: d("1200"), Insurance: d("150")},
			{ID: "hcmc-la", Name: "HCMC → Los Angeles", Shipping: d("1800"), Insurance: d("200")},
		},
	}
}

// Rate schedule names accepted by RateTableFor.
const (
	ScheduleStandard = "standard"
	SchedulePro      = "pro"
)

// ProRateTable returns the built-in table with explicit per-code rates for the
// professional calculator's sample catalog. Explicit code rates win over prefix rules.
func ProRateTable() domain.RateTable {
	table := DefaultRateTable()
	table.Name = "built-in (pro)"

	rates := []domain.HSCode{
		{Code: "8517.12", Description: "Smartphones and mobile phones", RatePercent: ratePtr("8.5")},
		{Code: "6404.11", Description: "Sports footwear with outer soles of rubber or plastics", RatePercent: ratePtr("12")},
		{Code: "6109.10", Description: "T-shirts, singlets and other vests, of cotton", RatePercent: ratePtr("12")},
		{Code: "8529.90", Description: "Parts for reception and transmission apparatus (electronic components)", RatePercent: ratePtr("8.5")},
	}
	index := make(map[string]int, len(table.HSCodes))
	for i, c := range table.HSCodes {
		index[NormalizeHSCode(c.Code)] = i
	}
	for _, c := range rates {
		if i, ok := index[NormalizeHSCode(c.Code)]; ok {
			table.HSCodes[i].RatePercent = c.RatePercent
			continue
		}
		table.HSCodes = append(table.HSCodes, c)
	}
	return table
}

// RateTableFor returns the built-in table for a schedule name.
func RateTableFor(schedule string) (domain.RateTable, error) {
	switch strings.ToLower(strings.TrimSpace(schedule)) {
	case "", ScheduleStandard:
		return DefaultRateTable(), nil
	case SchedulePro:
		return ProRateTable(), nil
	default:
		return domain.RateTable{}, fmt.Errorf("unknown rate schedule %q (want %s or %s)", schedule, ScheduleStandard, SchedulePro)
	}
}

func ratePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// NormalizeHSCode strips separators from an HS code ("6109.10" -> "610910").
func NormalizeHSCode(code string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ' ', '-', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(code))
}

// RateResolver resolves classification keys against a RateTable.
type RateResolver struct {
	table   domain.RateTable
	rules   []domain.RateRule
	sectors map[string]domain.Sector
	codes   map[string]domain.HSCode
}

// NewRateResolver indexes a rate table. Rules are reordered longest prefix first
// (stable), so first match wins and the most specific band is the first match.
func NewRateResolver(table domain.RateTable) *RateResolver {
	rules := make([]domain.RateRule, 0, len(table.Rules))
	for _, r := range table.Rules {
		r.Prefix = NormalizeHSCode(r.Prefix)
		if r.Prefix == "" {
			continue
		}
		rules = append(rules, r)
	}
	sort.SliceStable(rules, func(i, j int) bool { return len(rules[i].Prefix) > len(rules[j].Prefix) })

	sectors := make(map[string]domain.Sector, len(table.Sectors))
	for _, s := range table.Sectors {
		sectors[strings.ToLower(s.ID)] = s
	}
	codes := make(map[string]domain.HSCode, len(table.HSCodes))
	for _, c := range table.HSCodes {
		codes[NormalizeHSCode(c.Code)] = c
	}

	return &RateResolver{table: table, rules: rules, sectors: sectors, codes: codes}
}

// Table returns the underlying rate table.
func (rr *RateResolver) Table() domain.RateTable { return rr.table }

// Rules returns the rules in evaluation order.
func (rr *RateResolver) Rules() []domain.RateRule {
	return append([]domain.RateRule(nil), rr.rules...)
}

// Resolve maps a sector id or HS code to a duty rate. Lookup order: sector id,
// catalog entry with an explicit rate, prefix rules, default rate.
func (rr *RateResolver) Resolve(key string) domain.DutyRate {
	trimmed := strings.TrimSpace(key)
	if s, ok := rr.sectors[strings.ToLower(trimmed)]; ok {
		return domain.DutyRate{RatePercent: s.RatePercent, Source: domain.RateSourceSector, Label: s.Name}
	}

	code := NormalizeHSCode(trimmed)
	if c, ok := rr.codes[code]; ok && c.RatePercent != nil {
		return domain.DutyRate{RatePercent: *c.RatePercent, Source: domain.RateSourceHSCode, Label: c.Description}
	}

	if code != "" {
		for _, r := range rr.rules {
			if strings.HasPrefix(code, r.Prefix) {
				return domain.DutyRate{RatePercent: r.RatePercent, Source: domain.RateSourcePrefix, Label: r.Label}
			}
		}
	}

	return domain.DutyRate{RatePercent: rr.table.DefaultRatePercent, Source: domain.RateSourceDefault}
}

// Search finds catalog entries whose code or description contains query
// (case-insensitive). limit <= 0 means DefaultSearchLimit.
func (rr *RateResolver) Search(query string, limit int) []domain.HSCode {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.HSCode{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	nq := NormalizeHSCode(q)

	matches := make([]domain.HSCode, 0, limit)
	for _, c := range rr.table.HSCodes {
		if len(matches) >= limit {
			break
		}
		code := strings.ToLower(c.Code)
		if strings.Contains(code, q) ||
			(nq != "" && strings.Contains(NormalizeHSCode(code), nq)) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			matches = append(matches, c)
		}
	}
	return matches
}
