package insights

import "fmt"

// placeholderConfidence is the fixed confidence score of the rule-based
// generator.
const placeholderConfidence = 0.75

// Generator produces insight text for a generation request. The rule-based
// implementation is total: it always returns text and a confidence score.
// A real text-generation backend replaces this interface and must surface
// its own failure mode instead.
type Generator interface {
	Generate(req *GenerateRequest) (text string, confidence float64)
	ModelVersion() string
}

// ruleBasedGenerator renders a deterministic template per insight type.
type ruleBasedGenerator struct {
	modelVersion string
}

// NewRuleBasedGenerator creates the placeholder generator tagged with the
// given model version.
func NewRuleBasedGenerator(modelVersion string) Generator {
	return &ruleBasedGenerator{modelVersion: modelVersion}
}

func (g *ruleBasedGenerator) ModelVersion() string {
	return g.modelVersion
}

func (g *ruleBasedGenerator) Generate(req *GenerateRequest) (string, float64) {
	switch ParseInsightType(req.InsightType) {
	case InsightTypeCountry:
		return fmt.Sprintf(
			"Based on the available data for %s, brain capital indicators show a moderate level of development. "+
				"Key areas for improvement include education access and digital infrastructure.",
			req.CountryCode), placeholderConfidence
	case InsightTypeTrend:
		return fmt.Sprintf(
			"Trend analysis from %s to %s indicates steady progress across most brain capital dimensions. "+
				"Notable improvements are observed in digitalization and brain health.",
			formatYear(req.YearStart), formatYear(req.YearEnd)), placeholderConfidence
	case InsightTypeComparative:
		return "Comparative analysis reveals significant variation across regions. " +
			"High-income countries generally outperform in brain skills metrics, " +
			"while emerging economies show rapid improvement in brain capital drivers.", placeholderConfidence
	default:
		return "Analysis of brain capital indicators provides insights into " +
			"the overall capacity and potential of the population.", placeholderConfidence
	}
}

func formatYear(year *int) string {
	if year == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *year)
}
