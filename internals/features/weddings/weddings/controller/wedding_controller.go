package controller

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_backend/internals/features/weddings/weddings/dto"
	repo "wedding_backend/internals/features/weddings/weddings/repository"
	"wedding_backend/internals/features/weddings/weddings/service"
	helper "wedding_backend/internals/helpers"
)

type WeddingController struct {
	Service *service.WeddingService
	Log     *zap.Logger
}

func NewWeddingController(db *gorm.DB, log *zap.Logger) *WeddingController {
	return &WeddingController{
		Service: service.NewWeddingService(db),
		Log:     log.Named("weddings"),
	}
}

// POST /api/weddings
func (wc *WeddingController) Save(c *fiber.Ctx) error {
	var req dto.SaveWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := wc.Service.Save(c.UserContext(), req, helper.GetUserUUID(c))
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		return helper.ValidationError(c, err)
	case errors.Is(err, service.ErrDuplicate), errors.Is(err, service.ErrUnknownOwner):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	wc.Log.Debug("wedding saved", zap.String("wedding_id", id.String()))
	return helper.JsonOK(c, dto.SaveWeddingResponse{ID: id, Message: "Wedding saved successfully"})
}

// GET /api/weddings/:token
func (wc *WeddingController) GetByToken(c *fiber.Ctx) error {
	token, err := url.PathUnescape(c.Params("token"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Wedding not found")
	}
	view, err := wc.Service.GetByToken(c.UserContext(), token)
	if errors.Is(err, repo.ErrWeddingNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Wedding not found")
	}
	if err != nil {
		return err
	}
	return helper.JsonOK(c, view)
}

// GET /api/weddings/:weddingId/events
func (wc *WeddingController) GetEvents(c *fiber.Ctx) error {
	weddingID, err := url.PathUnescape(c.Params("weddingId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.ErrNotPublic.Error())
	}
	events, err := wc.Service.GetEvents(c.UserContext(), weddingID)
	if errors.Is(err, service.ErrNotPublic) {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return helper.JsonOK(c, events)
}

// GET /api/weddings/user/:userId
// 200 with a JSON null body when the user has no wedding yet.
func (wc *WeddingController) GetByUser(c *fiber.Ctx) error {
	w, err := wc.Service.GetByUser(c.UserContext(), c.Params("userId"))
	if errors.Is(err, service.ErrInvalidUserID) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	if w == nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).SendString("null")
	}
	return helper.JsonOK(c, w)
}

// DELETE /api/weddings/:id
func (wc *WeddingController) Delete(c *fiber.Ctx) error {
	err := wc.Service.Delete(c.UserContext(), c.Params("id"))
	switch {
	case errors.Is(err, service.ErrInvalidWeddingID):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrWeddingNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Wedding not found")
	case err != nil:
		return err
	}

	wc.Log.Info("wedding deleted", zap.String("wedding_id", c.Params("id")))
	return helper.JsonMessage(c, "Wedding deleted successfully", nil)
}
