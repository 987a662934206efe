package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authDTO "wedding_backend/internals/features/users/auth/dto"
	authHelper "wedding_backend/internals/features/users/auth/helper"
	"wedding_backend/internals/features/users/auth/service"
	helper "wedding_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
	Log     *zap.Logger
}

func NewAuthController(db *gorm.DB, jwtSecret string, log *zap.Logger) *AuthController {
	return &AuthController{
		Service: service.NewAuthService(db, jwtSecret),
		Log:     log.Named("auth"),
	}
}

// POST /api/auth/signup
func (ac *AuthController) SignUp(c *fiber.Ctx) error {
	var req authDTO.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := ac.Service.SignUp(c.UserContext(), req)
	switch {
	case errors.Is(err, authHelper.ErrCredentialsRequired), errors.Is(err, service.ErrUserExists):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	ac.Log.Info("user signed up", zap.String("user_id", resp.User.ID.String()))
	return helper.JsonOK(c, resp)
}

// POST /api/auth/signin
func (ac *AuthController) SignIn(c *fiber.Ctx) error {
	var req authDTO.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := ac.Service.SignIn(c.UserContext(), req)
	switch {
	case errors.Is(err, authHelper.ErrCredentialsRequired):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	case err != nil:
		return err
	}
	return helper.JsonOK(c, resp)
}

// GET /api/profiles/:userId
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid User ID format")
	}

	profile, err := ac.Service.GetProfile(c.UserContext(), userID)
	if errors.Is(err, service.ErrProfileNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return helper.JsonOK(c, profile)
}
