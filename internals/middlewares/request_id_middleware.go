package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

const LocRequestID = "reqid"

// RequestID tags every request with X-Request-ID. The access log and the
// error handler read it back from Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(LocRequestID, id)
		return c.Next()
	}
}

// RequestIDOf returns the id assigned by RequestID, if any.
func RequestIDOf(c *fiber.Ctx) string {
	id, _ := c.Locals(LocRequestID).(string)
	return id
}
