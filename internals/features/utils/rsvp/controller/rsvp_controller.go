package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	helper "wedding_backend/internals/helpers"
)

type RSVPController struct {
	Log *zap.Logger
}

func NewRSVPController(log *zap.Logger) *RSVPController {
	return &RSVPController{Log: log.Named("rsvp")}
}

// POST /api/rsvp
// Accepted and logged only; nothing is stored yet. A non-empty body must be a
// JSON object.
func (rc *RSVPController) Submit(c *fiber.Ctx) error {
	if body := c.Body(); len(body) > 0 {
		var payload datatypes.JSONMap
		if err := payload.UnmarshalJSON(body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		rc.Log.Info("rsvp received",
			zap.Int("fields", len(payload)),
			zap.Any("payload", map[string]interface{}(payload)),
		)
	}
	return helper.JsonMessage(c, "RSVP received", nil)
}
