package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "wedding_backend/internals/helpers"
)

type UploadController struct {
	Store *helper.ImageStore
	Log   *zap.Logger
}

func NewUploadController(store *helper.ImageStore, log *zap.Logger) *UploadController {
	return &UploadController{Store: store, Log: log.Named("upload")}
}

// POST /api/upload (multipart field "file")
func (uc *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	name, err := uc.Store.Save(fh)
	switch {
	case errors.Is(err, helper.ErrFileTooLarge):
		return helper.JsonError(c, fiber.StatusBadRequest, "File too large")
	case errors.Is(err, helper.ErrNotImage):
		return helper.JsonError(c, fiber.StatusBadRequest, "Only image files are allowed")
	case err != nil:
		return err
	}

	uc.Log.Info("file uploaded",
		zap.String("name", name),
		zap.Int64("size", fh.Size),
	)
	return helper.JsonOK(c, fiber.Map{
		"url": fmt.Sprintf("%s://%s/uploads/%s", c.Protocol(), c.Hostname(), name),
	})
}
