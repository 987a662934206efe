// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_backend/internals/configs"
	helper "wedding_backend/internals/helpers"
	authMiddleware "wedding_backend/internals/middlewares/auth"
	rateLimiter "wedding_backend/internals/middlewares"
	routeDetails "wedding_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	log = log.Named("routes")

	log.Info("mounting health route")
	routeDetails.HealthRoutes(app, db)

	// Bearer is optional everywhere: a valid token only fills Locals(user_id).
	api := app.Group("/api",
		rateLimiter.GlobalRateLimiter(),
		authMiddleware.OptionalAuthJWT(cfg.JWTSecret),
	)

	log.Info("mounting auth routes")
	routeDetails.AuthRoutes(api, db, cfg, log)

	log.Info("mounting wedding routes")
	routeDetails.WeddingRoutes(api, db, log)

	log.Info("mounting utils routes", zap.String("upload_dir", cfg.UploadDir))
	routeDetails.UtilsRoutes(api, &helper.ImageStore{
		Dir:          cfg.UploadDir,
		MaxBytes:     cfg.UploadMaxBytes,
		MaxDimension: cfg.UploadMaxDimension,
	}, log)

	// static + SPA fallback must come last
	BaseRoutes(app, cfg, log)
}
