package routes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wedding_backend/internals/configs"
	helper "wedding_backend/internals/helpers"
)

// BaseRoutes serves uploaded files, the built frontend and the catch-all.
func BaseRoutes(app *fiber.App, cfg *configs.Config, log *zap.Logger) {
	app.Static("/uploads", cfg.UploadDir)

	index := ""
	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		app.Static("/", cfg.StaticDir)
		if _, err := os.Stat(filepath.Join(cfg.StaticDir, "index.html")); err == nil {
			index = filepath.Join(cfg.StaticDir, "index.html")
		}
	} else {
		log.Warn("static dir not found, SPA disabled", zap.String("static_dir", cfg.StaticDir))
	}

	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return helper.JsonError(c, fiber.StatusNotFound, "API endpoint not found")
		}
		if index != "" && c.Method() == fiber.MethodGet {
			return c.SendFile(index)
		}
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	})
}
