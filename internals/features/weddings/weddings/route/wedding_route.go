package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_backend/internals/features/weddings/weddings/controller"
)

// WeddingRoutes mounts /api/weddings. The literal /user segment is registered
// before the /:token catch so it is never read as a share token.
func WeddingRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := controller.NewWeddingController(db, log)

	g := api.Group("/weddings")
	g.Post("/", ctl.Save)
	g.Get("/user/:userId", ctl.GetByUser)
	g.Get("/:weddingId/events", ctl.GetEvents)
	g.Get("/:token", ctl.GetByToken)
	g.Delete("/:id", ctl.Delete)
}
