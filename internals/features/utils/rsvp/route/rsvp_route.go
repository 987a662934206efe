package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wedding_backend/internals/features/utils/rsvp/controller"
)

func RSVPRoutes(api fiber.Router, log *zap.Logger) {
	ctl := controller.NewRSVPController(log)
	api.Post("/rsvp", ctl.Submit)
}
