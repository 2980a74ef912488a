package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/braincapital/braincap/app/controllers"
	"github.com/braincapital/braincap/internal/pkg/constants"
)

// HttpRouter installs the server-rendered pages and the htmx fragments
type HttpRouter struct {
	deps *Deps
}

// NewHttpRouter creates the http router
func NewHttpRouter(deps *Deps) *HttpRouter {
	return &HttpRouter{deps: deps}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	web := controllers.NewWebController(h.deps.Catalog, h.deps.DB)
	htmx := controllers.NewHtmxController(h.deps.Catalog, h.deps.Filters, h.deps.Insights)

	app.Get("/", web.HandleIndex)
	app.Get("/countries", web.HandleCountries)
	app.Get("/countries/:code", web.HandleCountryDetail)

	hx := app.Group(constants.HtmxRoute)
	hx.Get("/dimensions", htmx.HandleDimensionOptions)
	hx.Get("/indicators", htmx.HandleIndicatorOptions)
	hx.Get("/filter-results", htmx.HandleFilterResults)
	hx.Get("/insight", htmx.HandleInsightPanel)
}
