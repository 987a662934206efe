package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wedding_backend/internals/features/utils/uploads/controller"
	helper "wedding_backend/internals/helpers"
)

func UploadRoutes(api fiber.Router, store *helper.ImageStore, log *zap.Logger) {
	ctl := controller.NewUploadController(store, log)
	api.Post("/upload", ctl.Upload)
}
