package filters

import "strings"

// Pagination bounds enforced at the transport boundary.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// FilterParams is the optional-field filter request for the cascading query.
// Absent fields do not constrain the join; present fields compose with AND
// semantics only.
type FilterParams struct {
	PillarID     uint   `query:"pillar_id" json:"pillar_id"`
	DimensionID  uint   `query:"dimension_id" json:"dimension_id"`
	IndicatorID  uint   `query:"indicator_id" json:"indicator_id"`
	CountryCodes string `query:"country_codes" json:"country_codes"`
	YearStart    int    `query:"year_start" json:"year_start" validate:"omitempty,gte=1900,lte=2100"`
	YearEnd      int    `query:"year_end" json:"year_end" validate:"omitempty,gte=1900,lte=2100"`
	Limit        int    `query:"limit" json:"limit"`
	Offset       int    `query:"offset" json:"offset"`
}

// CountryCodeList splits the comma-joined codes, trims and upper-cases each
// token. Duplicates are kept; the IN predicate tolerates them.
func (p *FilterParams) CountryCodeList() []string {
	if p.CountryCodes == "" {
		return nil
	}
	parts := strings.Split(p.CountryCodes, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.ToUpper(strings.TrimSpace(part)); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return codes
}

// Normalize clamps limit to [1,MaxLimit] and offset to >= 0. Callers at the
// transport boundary run this before handing the params to the engine.
func (p *FilterParams) Normalize() {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// FlatValueRow is the denormalized, display-ready projection of one fact row.
// Stored decimals are materialized as float64 here; a lossy but intentional
// conversion for display.
type FlatValueRow struct {
	ID              uint     `json:"id"`
	CountryCode     string   `json:"country_code"`
	CountryName     string   `json:"country_name"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	IndicatorName   string   `json:"indicator_name"`
	Unit            string   `json:"unit"`
	DimensionName   string   `json:"dimension_name"`
	PillarName      string   `json:"pillar_name"`
	Year            int      `json:"year"`
	Value           *float64 `json:"value"`
	ConfidenceScore *float64 `json:"confidence_score"`
}

// MapRow is the geospatial projection used by the map view. Only countries
// with known coordinates ever appear here.
type MapRow struct {
	CountryCode string   `json:"country_code"`
	CountryName string   `json:"country_name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Value       *float64 `json:"value"`
	Unit        string   `json:"unit"`
}
