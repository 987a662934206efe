package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_backend/internals/configs"
	authRoute "wedding_backend/internals/features/users/auth/route"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	authRoute.AuthRoutes(api, db, cfg.JWTSecret, log)
}
