package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/braincapital/braincap/internal/pkg/catalog"
	"github.com/braincapital/braincap/internal/pkg/filters"
)

// IndicatorAPIController serves the hierarchy and filtered-value endpoints
type IndicatorAPIController struct {
	catalog *catalog.Service
	filters *filters.Service
}

// NewIndicatorAPIController creates an indicator API controller
func NewIndicatorAPIController(catalogSvc *catalog.Service, filterSvc *filters.Service) *IndicatorAPIController {
	return &IndicatorAPIController{catalog: catalogSvc, filters: filterSvc}
}

// HandleListPillars returns all pillars in display order
func (ct *IndicatorAPIController) HandleListPillars(c *fiber.Ctx) error {
	pillars, err := ct.catalog.ListPillars()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(pillars)
}

// HandleListPillarDimensions returns the ordered dimensions of a pillar
func (ct *IndicatorAPIController) HandleListPillarDimensions(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid pillar id")
	}

	pillar, err := ct.catalog.GetPillar(id)
	if err != nil {
		return serverError(c, err)
	}
	if pillar == nil {
		return notFound(c, fmt.Sprintf("Pillar with ID %d not found", id))
	}

	dimensions, err := ct.catalog.ListDimensions(id)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(dimensions)
}

// HandleListDimensionIndicators returns the ordered active indicators of a dimension
func (ct *IndicatorAPIController) HandleListDimensionIndicators(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid dimension id")
	}

	dimension, err := ct.catalog.GetDimension(id)
	if err != nil {
		return serverError(c, err)
	}
	if dimension == nil {
		return notFound(c, fmt.Sprintf("Dimension with ID %d not found", id))
	}

	indicators, err := ct.catalog.ListIndicators(id)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(indicators)
}

// HandleListIndicators returns all active indicators
func (ct *IndicatorAPIController) HandleListIndicators(c *fiber.Ctx) error {
	indicators, err := ct.catalog.ListActiveIndicators()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(indicators)
}

// HandleGetIndicator returns an indicator with its dimension and pillar
func (ct *IndicatorAPIController) HandleGetIndicator(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid indicator id")
	}

	indicator, err := ct.catalog.GetIndicator(id)
	if err != nil {
		return serverError(c, err)
	}
	if indicator == nil {
		return notFound(c, fmt.Sprintf("Indicator with ID %d not found", id))
	}

	return c.JSON(indicator)
}

// HandleFilterValues returns the denormalized fact rows matching the
// cascading filter plus the unpaginated total
func (ct *IndicatorAPIController) HandleFilterValues(c *fiber.Ctx) error {
	var params filters.FilterParams
	if err := c.QueryParser(&params); err != nil {
		return badRequest(c, "invalid filter parameters")
	}
	if err := validate.Struct(&params); err != nil {
		return badRequest(c, err.Error())
	}
	params.Normalize()

	rows, total, err := ct.filters.FilterValues(&params)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":    rows,
		"total":   total,
		"filters": params,
	})
}

// HandleMapData returns the geospatial view for one indicator and year
func (ct *IndicatorAPIController) HandleMapData(c *fiber.Ctx) error {
	indicatorID := c.QueryInt("indicator_id", 0)
	year := c.QueryInt("year", 0)
	if indicatorID < 1 {
		return badRequest(c, "indicator_id is required")
	}
	if year < 1900 || year > 2100 {
		return badRequest(c, "year must be between 1900 and 2100")
	}

	data, err := ct.filters.MapData(uint(indicatorID), year)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"indicator_id": indicatorID,
		"year":         year,
		"data":         data,
		"total":        len(data),
	})
}
