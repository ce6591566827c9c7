package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pokedex/internal/logging"
)

// Logger logs each HTTP request as one JSON line with:
// - request_id (from the RequestID middleware)
// - method
// - path (no query string)
// - status
// - latency (milliseconds, float)
func Logger(l *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// An error here has not been through the app ErrorHandler yet.
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		l.Info("request", logging.Fields{
			"request_id": RequestIDFromCtx(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		})

		return err
	}
}

func statusFromError(err error) int {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
