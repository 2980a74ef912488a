package router

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/braincapital/braincap/internal/pkg/catalog"
	"github.com/braincapital/braincap/internal/pkg/config"
	"github.com/braincapital/braincap/internal/pkg/filters"
	"github.com/braincapital/braincap/internal/pkg/insights"
)

// Router installs a set of routes on the app
type Router interface {
	InstallRouter(app *fiber.App)
}

// Deps carries the services the routers wire into their handlers. It is
// built once in main and passed down; handlers never reach for globals.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Catalog  *catalog.Service
	Filters  *filters.Service
	Insights *insights.Service
}

// InstallRouter attaches the web and API routers to the app
func InstallRouter(app *fiber.App, deps *Deps) {
	setup(app, NewHttpRouter(deps), NewApiRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
