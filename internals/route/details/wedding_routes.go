package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	weddingRoute "wedding_backend/internals/features/weddings/weddings/route"
)

func WeddingRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	weddingRoute.WeddingRoutes(api, db, log)
}
