package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgrid/results-api/internal/config"
	"github.com/campusgrid/results-api/internal/handler"
	"github.com/campusgrid/results-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler    *handler.AuthHandler
	StudentHandler *handler.StudentHandler
	SubjectHandler *handler.SubjectHandler
	ResultHandler  *handler.ResultHandler
	WriteLimiter   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students"))
	}

	if deps.SubjectHandler != nil {
		deps.SubjectHandler.Register(api.Group("/subjects"))
	}

	if deps.ResultHandler != nil {
		deps.ResultHandler.Register(api.Group("/results"), deps.WriteLimiter)
	}
}
