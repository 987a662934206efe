package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError writes the standard error body for err. A *fiber.Error below
// 500 keeps its status and message; anything else becomes the generic 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "")
}
