package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestRuleBasedGeneratorPerType(t *testing.T) {
	g := NewRuleBasedGenerator("rule-based-v1")

	text, confidence := g.Generate(&GenerateRequest{InsightType: "country", CountryCode: "USA"})
	assert.Contains(t, text, "USA")
	assert.Equal(t, 0.75, confidence)

	text, _ = g.Generate(&GenerateRequest{
		InsightType: "trend",
		YearStart:   intPtr(2020),
		YearEnd:     intPtr(2023),
	})
	assert.Contains(t, text, "2020")
	assert.Contains(t, text, "2023")

	text, _ = g.Generate(&GenerateRequest{InsightType: "comparative"})
	assert.Contains(t, text, "Comparative analysis")
}

func TestRuleBasedGeneratorUnknownTypeFallsBack(t *testing.T) {
	g := NewRuleBasedGenerator("rule-based-v1")

	generic, confidence := g.Generate(&GenerateRequest{InsightType: "something-else"})
	assert.Equal(t, 0.75, confidence)
	assert.True(t, strings.HasPrefix(generic, "Analysis of brain capital indicators"))

	explicit, _ := g.Generate(&GenerateRequest{InsightType: "generic"})
	assert.Equal(t, generic, explicit)
}

func TestRuleBasedGeneratorTrendWithoutYears(t *testing.T) {
	g := NewRuleBasedGenerator("rule-based-v1")

	text, _ := g.Generate(&GenerateRequest{InsightType: "trend"})
	assert.Contains(t, text, "n/a")
}

func TestParseInsightType(t *testing.T) {
	assert.Equal(t, InsightTypeCountry, ParseInsightType("country"))
	assert.Equal(t, InsightTypeTrend, ParseInsightType("trend"))
	assert.Equal(t, InsightTypeComparative, ParseInsightType("comparative"))
	assert.Equal(t, InsightTypeGeneric, ParseInsightType("generic"))
	assert.Equal(t, InsightTypeGeneric, ParseInsightType(""))
	assert.Equal(t, InsightTypeGeneric, ParseInsightType("COUNTRY"))
}

func TestModelVersionPassthrough(t *testing.T) {
	assert.Equal(t, "rule-based-v1", NewRuleBasedGenerator("rule-based-v1").ModelVersion())
}
