package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/braincapital/braincap/app/models"
	"github.com/braincapital/braincap/internal/pkg/catalog"
)

// CountryAPIController serves the country reference data endpoints
type CountryAPIController struct {
	catalog *catalog.Service
}

// NewCountryAPIController creates a country API controller
func NewCountryAPIController(svc *catalog.Service) *CountryAPIController {
	return &CountryAPIController{catalog: svc}
}

// HandleListCountries returns countries with pagination and total count
func (ct *CountryAPIController) HandleListCountries(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	countries, total, err := ct.catalog.ListCountries(skip, limit)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"countries": countries,
		"total":     total,
	})
}

// HandleGetCountry returns a single country by ISO code
func (ct *CountryAPIController) HandleGetCountry(c *fiber.Ctx) error {
	code := c.Params("code")

	country, err := ct.catalog.GetCountryByCode(code)
	if err != nil {
		return serverError(c, err)
	}
	if country == nil {
		return notFound(c, fmt.Sprintf("Country with code '%s' not found", code))
	}

	return c.JSON(country)
}

// HandleCreateCountry creates a new country
func (ct *CountryAPIController) HandleCreateCountry(c *fiber.Ctx) error {
	var country models.Country
	if err := c.BodyParser(&country); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := ct.catalog.CreateCountry(&country); err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(country)
}

// HandleUpdateCountry updates an existing country by ID
func (ct *CountryAPIController) HandleUpdateCountry(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid country id")
	}

	var update models.Country
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "invalid request body")
	}

	country, err := ct.catalog.UpdateCountry(id, &update)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if country == nil {
		return notFound(c, fmt.Sprintf("Country with ID %d not found", id))
	}

	return c.JSON(country)
}

// HandleDeleteCountry deletes a country and its dependent data
func (ct *CountryAPIController) HandleDeleteCountry(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid country id")
	}

	deleted, err := ct.catalog.DeleteCountry(id)
	if err != nil {
		return serverError(c, err)
	}
	if !deleted {
		return notFound(c, fmt.Sprintf("Country with ID %d not found", id))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
