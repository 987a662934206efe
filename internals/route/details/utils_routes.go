package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	healthRoute "wedding_backend/internals/features/utils/health/route"
	rsvpRoute "wedding_backend/internals/features/utils/rsvp/route"
	uploadRoute "wedding_backend/internals/features/utils/uploads/route"
	helper "wedding_backend/internals/helpers"
)

func UtilsRoutes(api fiber.Router, store *helper.ImageStore, log *zap.Logger) {
	uploadRoute.UploadRoutes(api, store, log)
	rsvpRoute.RSVPRoutes(api, log)
}

// HealthRoutes sits outside /api so the rate limiter never rejects probes.
func HealthRoutes(app *fiber.App, db *gorm.DB) {
	healthRoute.HealthRoutes(app, db)
}
