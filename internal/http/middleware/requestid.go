package middleware

import (
	"github.com/gofiber/fiber/v2"

	"appealsapi/internal/logger"
)

// RequestID tags every request with the caller's X-Request-ID, or a new UUID
// when none is usable, echoes it on the response and puts it on the user
// context where handlers and services read it through logger.RequestID.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := logger.ResolveRequestID(c.Get(logger.RequestIDHeader))
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		c.Set(logger.RequestIDHeader, id)
		return c.Next()
	}
}
