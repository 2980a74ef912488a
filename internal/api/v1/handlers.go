package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/braincapital/braincap/app/controllers"
	"github.com/braincapital/braincap/internal/pkg/catalog"
	"github.com/braincapital/braincap/internal/pkg/filters"
	"github.com/braincapital/braincap/internal/pkg/insights"
)

// APIServer bundles the v1 JSON API handlers. It delegates to the
// controllers to keep response shapes consistent with the web surface.
type APIServer struct {
	countries  *controllers.CountryAPIController
	indicators *controllers.IndicatorAPIController
	insights   *controllers.InsightAPIController
}

// NewAPIServer creates a new API server instance
func NewAPIServer(catalogSvc *catalog.Service, filterSvc *filters.Service, insightSvc *insights.Service) *APIServer {
	return &APIServer{
		countries:  controllers.NewCountryAPIController(catalogSvc),
		indicators: controllers.NewIndicatorAPIController(catalogSvc, filterSvc),
		insights:   controllers.NewInsightAPIController(insightSvc),
	}
}

// RegisterHandlers attaches all v1 routes to the given router group. The
// admin handler guards the mutating country endpoints.
func RegisterHandlers(router fiber.Router, s *APIServer, admin fiber.Handler) {
	// Countries
	router.Get("/countries", s.countries.HandleListCountries)
	router.Get("/countries/:code", s.countries.HandleGetCountry)
	router.Post("/countries", admin, s.countries.HandleCreateCountry)
	router.Put("/countries/:id", admin, s.countries.HandleUpdateCountry)
	router.Delete("/countries/:id", admin, s.countries.HandleDeleteCountry)

	// Hierarchy
	router.Get("/pillars", s.indicators.HandleListPillars)
	router.Get("/pillars/:id/dimensions", s.indicators.HandleListPillarDimensions)
	router.Get("/dimensions/:id/indicators", s.indicators.HandleListDimensionIndicators)
	router.Get("/indicators", s.indicators.HandleListIndicators)

	// Values and map data. Registered ahead of the :id route so the
	// literal paths are not captured as parameters.
	router.Get("/indicators/values", s.indicators.HandleFilterValues)
	router.Get("/indicators/:id", s.indicators.HandleGetIndicator)
	router.Get("/map/data", s.indicators.HandleMapData)

	// Insights
	router.Post("/insights/generate", s.insights.HandleGenerateInsight)
	router.Get("/insights/:id", s.insights.HandleGetInsight)
	router.Post("/insights/:id/feedback", s.insights.HandleInsightFeedback)
}
