package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"academy_backend/internals/configs"
	"academy_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	if cfg.Environment != "test" {
		app.Use(logger.LoggerMiddleware())
	}
	app.Use("/api", GlobalRateLimiter())
}
