// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "wedding_backend/internals/features/users/auth/controller"
	rateLimiter "wedding_backend/internals/middlewares"
)

// AuthRoutes: /api/auth/* and /api/profiles/*
func AuthRoutes(api fiber.Router, db *gorm.DB, jwtSecret string, log *zap.Logger) {
	authController := controller.NewAuthController(db, jwtSecret, log)

	baseAuth := api.Group("/auth")
	baseAuth.Post("/signup", rateLimiter.RegisterRateLimiter(), authController.SignUp)
	baseAuth.Post("/signin", rateLimiter.LoginRateLimiter(), authController.SignIn)

	api.Get("/profiles/:userId", authController.GetProfile)
}
