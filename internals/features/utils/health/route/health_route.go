package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wedding_backend/internals/features/utils/health/controller"
)

func HealthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewHealthController(db)
	app.Get("/health", ctl.Check)
}
