package constants

// Static route constants
const (
	APIRoute    = "/api"
	APIV1Route  = "/v1"
	HtmxRoute   = "/htmx"
	StaticRoute = "/static"
	// Asset path without leading slash for filesystem lookup
	StaticAssetsPath = "public/assets"
)
