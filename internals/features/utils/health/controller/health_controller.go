package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "wedding_backend/internals/databases"
)

type HealthController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db, Now: time.Now}
}

// GET /health
func (hc *HealthController) Check(c *fiber.Ctx) error {
	status, dbStatus, code := "ok", "connected", fiber.StatusOK
	if err := database.Ping(c.UserContext(), hc.DB); err != nil {
		status, dbStatus, code = "down", "unreachable", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"database":  dbStatus,
		"timestamp": hc.Now().UTC().Format(time.RFC3339Nano),
	})
}
