package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "pustakaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the cross-cutting middleware stack.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggerMiddleware.LoggerMiddleware())
}
