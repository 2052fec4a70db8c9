package routes

import (
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/config"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// Setup mounts the review routes. The list and create operations do not
// distinguish paths; /healthz is the only reserved one.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	reviewHandler *handlers.ReviewHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/healthz", healthHandler.Check)

	app.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	app.Get("/*", reviewHandler.List)
	app.Post("/*", reviewHandler.Create)
	app.All("/*", handlers.MethodNotAllowed)
}
