package controllers

import (
	"encoding/json"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/braincapital/braincap/internal/pkg/catalog"
	"github.com/braincapital/braincap/internal/pkg/filters"
	"github.com/braincapital/braincap/internal/pkg/insights"
)

// HtmxController serves the partial fragments swapped in by the dashboard:
// the cascading filter dropdowns, the map results and the insight panel.
type HtmxController struct {
	catalog  *catalog.Service
	filters  *filters.Service
	insights *insights.Service
}

// NewHtmxController creates an htmx controller
func NewHtmxController(catalogSvc *catalog.Service, filterSvc *filters.Service, insightSvc *insights.Service) *HtmxController {
	return &HtmxController{catalog: catalogSvc, filters: filterSvc, insights: insightSvc}
}

// HandleDimensionOptions returns the dimension select for a pillar
func (ct *HtmxController) HandleDimensionOptions(c *fiber.Ctx) error {
	pillarID := c.QueryInt("pillar_id", 0)
	if pillarID < 1 {
		return badRequest(c, "pillar_id is required")
	}

	dimensions, err := ct.catalog.ListDimensions(uint(pillarID))
	if err != nil {
		return serverError(c, err)
	}

	return c.Render("partials/dimension_select", fiber.Map{
		"Dimensions": dimensions,
	})
}

// HandleIndicatorOptions returns the indicator select for a dimension
func (ct *HtmxController) HandleIndicatorOptions(c *fiber.Ctx) error {
	dimensionID := c.QueryInt("dimension_id", 0)
	if dimensionID < 1 {
		return badRequest(c, "dimension_id is required")
	}

	indicators, err := ct.catalog.ListIndicators(uint(dimensionID))
	if err != nil {
		return serverError(c, err)
	}

	return c.Render("partials/indicator_select", fiber.Map{
		"Indicators": indicators,
	})
}

// HandleFilterResults returns the map fragment for the selected indicator
// and year. Without an indicator the fragment renders empty.
func (ct *HtmxController) HandleFilterResults(c *fiber.Ctx) error {
	indicatorID := c.QueryInt("indicator_id", 0)
	year := c.QueryInt("year", 2023)

	if indicatorID < 1 {
		return c.Render("partials/filter_results", fiber.Map{
			"MapData": []filters.MapRow{},
			"Total":   0,
			"MapJSON": template.JS("[]"),
		})
	}

	data, err := ct.filters.MapData(uint(indicatorID), year)
	if err != nil {
		return serverError(c, err)
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return serverError(c, err)
	}

	return c.Render("partials/filter_results", fiber.Map{
		"MapData": data,
		"Total":   len(data),
		"MapJSON": template.JS(encoded),
	})
}

// HandleInsightPanel returns the insight fragment for the selected scope,
// generating a fresh insight on a cache miss.
func (ct *HtmxController) HandleInsightPanel(c *fiber.Ctx) error {
	req := insights.GenerateRequest{
		InsightType: c.Query("insight_type", string(insights.InsightTypeGeneric)),
		CountryCode: c.Query("country_code"),
	}
	if yearStart := c.QueryInt("year_start", 0); yearStart > 0 {
		req.YearStart = &yearStart
	}
	if yearEnd := c.QueryInt("year_end", 0); yearEnd > 0 {
		req.YearEnd = &yearEnd
	}

	insight, _, err := ct.insights.GetOrGenerate(&req)
	if err != nil {
		return serverError(c, err)
	}

	return c.Render("partials/insight", fiber.Map{
		"Insight": insight,
	})
}
