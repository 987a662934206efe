package server

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_backend/internals/configs"
	database "wedding_backend/internals/databases"
	helper "wedding_backend/internals/helpers"
	middlewares "wedding_backend/internals/middlewares"
	routes "wedding_backend/internals/route"
)

// bodyLimit leaves room for multipart overhead above the upload cap.
func bodyLimit(cfg *configs.Config) int {
	limit := int(cfg.UploadMaxBytes) + 1<<20
	if limit < 4<<20 {
		limit = 4 << 20
	}
	return limit
}

// NewApp builds the fully wired Fiber app on an open pool.
func NewApp(db *gorm.DB, cfg *configs.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit(cfg),
		ErrorHandler:          middlewares.ErrorHandler(log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg)
	routes.SetupRoutes(app, db, cfg, log)
	return app
}

// Run connects, serves and blocks until ctx is cancelled, then drains
// in-flight requests and closes the pool.
func Run(ctx context.Context, cfg *configs.Config, log *zap.Logger) error {
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("close pool", zap.Error(err))
		}
	}()
	if err := database.TunePool(db, cfg); err != nil {
		return fmt.Errorf("tune pool: %w", err)
	}
	if err := database.Ping(ctx, db); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	store := helper.ImageStore{Dir: cfg.UploadDir}
	if err := store.EnsureDir(); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	app := NewApp(db, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.Port))
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
