package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/braincapital/braincap/app/repository"
	"github.com/braincapital/braincap/internal/pkg/cache"
	"github.com/braincapital/braincap/internal/pkg/catalog"
	"github.com/braincapital/braincap/internal/pkg/config"
	"github.com/braincapital/braincap/internal/pkg/constants"
	"github.com/braincapital/braincap/internal/pkg/database"
	"github.com/braincapital/braincap/internal/pkg/env"
	"github.com/braincapital/braincap/internal/pkg/filters"
	"github.com/braincapital/braincap/internal/pkg/insights"
	"github.com/braincapital/braincap/internal/pkg/metrics/counter"
	"github.com/braincapital/braincap/internal/pkg/router"
)

func main() {
	app, cfg := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, *config.Config) {
	env.SetupEnvFile()
	cfg := config.Load()

	db, err := database.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	cache.SetupCache(cfg)

	repository.InitializeFactory(db)
	repos := repository.GetGlobalRepositories()

	catalogService := catalog.NewService(repos)
	filterService := filters.NewService(db)
	insightService := insights.NewService(
		repos,
		insights.NewRuleBasedGenerator(cfg.InsightModelVersion),
		time.Duration(cfg.InsightCacheHours)*time.Hour,
	)

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/braincap to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	engine.AddFunc("fmtValue", func(v *float64) string {
		if v == nil {
			return "—"
		}
		return fmt.Sprintf("%.2f", *v)
	})
	engine.AddFunc("pct", func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%.0f%%", *v*100)
	})

	// init fiber app
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		Views:   engine,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// CORS for the JSON API consumers
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
	}))

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			"admin": env.GetEnv("METRICS_PASSWORD", "changeme"),
		},
	}), monitor.New())

	// static files
	app.Static(constants.StaticRoute, basePath+constants.StaticAssetsPath, fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, &router.Deps{
		Config:   cfg,
		DB:       db,
		Catalog:  catalogService,
		Filters:  filterService,
		Insights: insightService,
	})

	// Drain the pending view counters to the database periodically
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := counter.FlushAll(db); err != nil {
				log.Printf("Failed to flush view counters: %v", err)
			}
		}
	}()

	return app, cfg
}
