package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/braincapital/braincap/internal/pkg/catalog"
	"github.com/braincapital/braincap/internal/pkg/metrics/counter"
	"github.com/braincapital/braincap/internal/pkg/statistics"
)

// WebController renders the server-side dashboard pages
type WebController struct {
	catalog *catalog.Service
	db      *gorm.DB
}

// NewWebController creates a web controller
func NewWebController(svc *catalog.Service, db *gorm.DB) *WebController {
	return &WebController{catalog: svc, db: db}
}

// HandleIndex renders the dashboard with the pillar filter and the map shell.
// Map data itself is loaded by the client through the htmx endpoints.
func (ct *WebController) HandleIndex(c *fiber.Ctx) error {
	pillars, err := ct.catalog.ListPillars()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load pillars")
	}

	go statistics.UpdateCacheIfNeeded(ct.db)

	return c.Render("index", fiber.Map{
		"Title":   "Brain Capital Intelligence Platform",
		"Pillars": pillars,
		"Stats":   statistics.GetData(ct.db),
	}, "layouts/main")
}

// HandleCountries renders the countries list page
func (ct *WebController) HandleCountries(c *fiber.Ctx) error {
	countries, total, err := ct.catalog.ListCountries(0, 250)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load countries")
	}

	return c.Render("countries", fiber.Map{
		"Title":     "Countries",
		"Countries": countries,
		"Total":     total,
	}, "layouts/main")
}

// HandleCountryDetail renders a single country page
func (ct *WebController) HandleCountryDetail(c *fiber.Ctx) error {
	code := c.Params("code")

	country, err := ct.catalog.GetCountryByCode(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load country")
	}
	if country == nil {
		return c.Status(fiber.StatusNotFound).SendString("Country not found")
	}

	// View counting is best-effort and must not block the page
	if err := counter.AddCountryView(country.ID); err != nil {
		log.Printf("Failed to count view for country %d: %v", country.ID, err)
	}

	return c.Render("country", fiber.Map{
		"Title":   country.Name,
		"Country": country,
	}, "layouts/main")
}
