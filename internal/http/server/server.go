package server

import (
	"fmt"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pokedex/internal/config"
	handlers "pokedex/internal/http/handler"
	"pokedex/internal/http/middleware"
	"pokedex/internal/logging"
	"pokedex/internal/service"
	"pokedex/internal/view"
)

// Deps are the collaborators built once at startup and shared by every request.
type Deps struct {
	Logger     *logging.Logger
	PokemonSvc service.PokemonService
	// Registry receives the HTTP metrics and backs /metrics. Required when metrics are enabled.
	Registry *prometheus.Registry
}

// New assembles the Fiber app: views, middleware, the route table and /metrics.
func New(cfg *config.AppConfig, deps Deps) (*fiber.App, error) {
	engine, err := view.New(view.Options{
		Dir:    cfg.TemplateDir,
		Reload: cfg.Debug,
		Minify: cfg.MinifyHTML,
	})
	if err != nil {
		return nil, err
	}
	// Fail at startup rather than on the first request.
	if err := engine.Load(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "pokedex",
		Views:                 engine,
		UnescapePath:          true,
		StrictRouting:         true,
		EnablePrintRoutes:     cfg.Debug,
		DisableStartupMessage: !cfg.Debug,
		ErrorHandler:          handlers.ErrorHandler(deps.Logger, cfg.Debug),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(deps.Logger))
	app.Use(otelfiber.Middleware())

	if cfg.MetricsEnabled {
		if deps.Registry == nil {
			return nil, fmt.Errorf("server: metrics enabled without a registry")
		}
		prom, err := middleware.NewPrometheusMiddleware(deps.Registry)
		if err != nil {
			return nil, fmt.Errorf("server: register metrics: %w", err)
		}
		app.Use(prom.Handler())
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(
			promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}),
		))
	}

	handlers.RegisterRoutes(app, deps.PokemonSvc)

	return app, nil
}
