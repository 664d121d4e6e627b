// Package server assembles the HTTP router: middleware chain, fallbacks and
// the route table.
package server

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/greeting-api/internal/http/health"
	"github.com/janisto/greeting-api/internal/http/hello"
	"github.com/janisto/greeting-api/internal/platform/config"
	applog "github.com/janisto/greeting-api/internal/platform/logging"
	appmiddleware "github.com/janisto/greeting-api/internal/platform/middleware"
	"github.com/janisto/greeting-api/internal/platform/respond"
)

const (
	apiTitle = "Greeting API"
	docsPath = "/docs"

	// maxRequestBody caps inbound bodies; no route reads one.
	maxRequestBody = 1 << 20
)

// route is one entry of the route table. Each register func binds a single
// method and path.
type route struct {
	name     string
	register func(huma.API)
}

// routeTable is fixed at compile time and read once by New.
var routeTable = []route{
	{name: "hello", register: hello.Register},
	{name: "health", register: health.Register},
}

// New builds the request handler for cfg. The logger is attached to every
// request context; handlers never reach for a global logger.
func New(cfg config.Config, logger *zap.Logger, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	var unsecured []string
	if cfg.Debug {
		unsecured = append(unsecured, docsPath)
	}

	router.Use(
		appmiddleware.Security(unsecured...),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBody),
		applog.RequestLogger(logger, cfg.ProjectID),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := humachi.New(router, apiConfig(cfg, version))
	for _, r := range routeTable {
		r.register(api)
		logger.Debug("route registered", zap.String("route", r.name))
	}
	return router
}

// apiConfig returns huma settings that keep response bodies to the declared
// payload. OpenAPI and docs routes exist only in debug mode.
func apiConfig(cfg config.Config, version string) huma.Config {
	hc := huma.DefaultConfig(apiTitle, version)
	// Drops the $schema body field and describedBy Link header.
	hc.CreateHooks = nil
	if cfg.Debug {
		hc.DocsPath = docsPath
		return hc
	}
	hc.OpenAPIPath = ""
	hc.DocsPath = ""
	hc.SchemasPath = ""
	return hc
}
