package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "wedding_backend/internals/helpers"
)

// ErrorHandler is the outermost catcher. Client errors raised as *fiber.Error
// pass through; everything else is logged with the request id.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code >= fiber.StatusInternalServerError {
			log.Error("unhandled error",
				zap.String("request_id", RequestIDOf(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.OriginalURL()),
				zap.Error(err),
			)
		}
		return helper.FromFiberError(c, err)
	}
}
