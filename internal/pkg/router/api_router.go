package router

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	apiv1 "github.com/braincapital/braincap/internal/api/v1"
	"github.com/braincapital/braincap/internal/pkg/constants"
	"github.com/braincapital/braincap/internal/pkg/middleware"
)

// ApiRouter installs the JSON API under /api
type ApiRouter struct {
	deps *Deps
}

// NewApiRouter creates the API router
func NewApiRouter(deps *Deps) *ApiRouter {
	return &ApiRouter{deps: deps}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	cfg := h.deps.Config

	api := app.Group(constants.APIRoute, limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMinute,
		Expiration: time.Minute,
	}))

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":      "healthy",
			"version":     "0.1.0",
			"environment": cfg.Environment,
		})
	})

	v1 := api.Group(constants.APIV1Route)

	// Map data is the hottest read path; responses are cached in Redis
	// keyed by the full URL (indicator + year).
	cachePort, _ := strconv.Atoi(cfg.CachePort)
	v1.Use("/map/data", cache.New(cache.Config{
		Expiration: 5 * time.Minute,
		Storage: redisstorage.New(redisstorage.Config{
			Host: cfg.CacheHost,
			Port: cachePort,
		}),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.OriginalURL()
		},
	}))

	apiServer := apiv1.NewAPIServer(h.deps.Catalog, h.deps.Filters, h.deps.Insights)
	apiv1.RegisterHandlers(v1, apiServer, middleware.AdminAPIKeyMiddleware(cfg.AdminAPIKey))
}
