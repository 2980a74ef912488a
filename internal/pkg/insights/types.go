package insights

// InsightType enumerates the known generation strategies. Unknown request
// strings parse to InsightTypeGeneric, so adding a kind means adding a
// constant and a branch in the generator, checked at compile time.
type InsightType string

const (
	InsightTypeCountry     InsightType = "country"
	InsightTypeTrend       InsightType = "trend"
	InsightTypeComparative InsightType = "comparative"
	InsightTypeGeneric     InsightType = "generic"
)

// ParseInsightType maps a raw request string onto a known type.
func ParseInsightType(s string) InsightType {
	switch InsightType(s) {
	case InsightTypeCountry, InsightTypeTrend, InsightTypeComparative:
		return InsightType(s)
	default:
		return InsightTypeGeneric
	}
}

// GenerateRequest carries the scope of an insight generation call. Every
// field except the type is optional.
type GenerateRequest struct {
	InsightType  string `json:"insight_type" validate:"required,max=50"`
	CountryCode  string `json:"country_code" validate:"omitempty,min=2,max=3"`
	IndicatorIDs []uint `json:"indicator_ids"`
	PillarID     *uint  `json:"pillar_id"`
	DimensionID  *uint  `json:"dimension_id"`
	YearStart    *int   `json:"year_start" validate:"omitempty,gte=1900,lte=2100"`
	YearEnd      *int   `json:"year_end" validate:"omitempty,gte=1900,lte=2100"`
}

// filterSnapshot is the provenance blob persisted with each insight. It is
// kept for debugging and is not used for cache matching.
type filterSnapshot struct {
	InsightType  string `json:"insight_type"`
	CountryCode  string `json:"country_code,omitempty"`
	IndicatorIDs []uint `json:"indicator_ids,omitempty"`
}
