package config

import (
	"strconv"
	"strings"

	"github.com/braincapital/braincap/internal/pkg/env"
)

// Config holds all process-wide settings. It is built once at startup and
// passed into component constructors; nothing mutates it at runtime.
type Config struct {
	AppName     string
	AppHost     string
	AppPort     string
	Environment string
	Debug       bool

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	CacheHost string
	CachePort string

	AllowedOrigins     []string
	RateLimitPerMinute int

	// AdminAPIKey guards the mutating country endpoints. Empty disables them.
	AdminAPIKey string

	// Insight generation settings. The model version tags which generation
	// strategy produced a cached insight.
	InsightModelVersion string
	InsightCacheHours   int
}

// Load reads the configuration from the environment. env.SetupEnvFile must
// have been called first if a .env file should be honored.
func Load() *Config {
	return &Config{
		AppName:     env.GetEnv("APP_NAME", "braincap"),
		AppHost:     env.GetEnv("APP_HOST", "localhost"),
		AppPort:     env.GetEnv("APP_PORT", "4000"),
		Environment: env.GetEnv("APP_ENV", "prod"),
		Debug:       env.GetEnv("APP_DEBUG", "false") == "true",

		DBUser:     env.GetEnv("DB_USER", "braincap"),
		DBPassword: env.GetEnv("DB_PASSWORD", "braincap"),
		DBHost:     env.GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     env.GetEnv("DB_PORT", "3306"),
		DBName:     env.GetEnv("DB_NAME", "braincap_db"),

		CacheHost: env.GetEnv("CACHE_HOST", "localhost"),
		CachePort: env.GetEnv("CACHE_PORT", "6379"),

		AllowedOrigins:     splitAndTrim(env.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4000")),
		RateLimitPerMinute: atoiOr(env.GetEnv("RATE_LIMIT_PER_MINUTE", "60"), 60),
		AdminAPIKey:        env.GetEnv("ADMIN_API_KEY", ""),

		InsightModelVersion: env.GetEnv("INSIGHT_MODEL_VERSION", "rule-based-v1"),
		InsightCacheHours:   atoiOr(env.GetEnv("INSIGHT_CACHE_HOURS", "24"), 24),
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
