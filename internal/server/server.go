package server

import (
	"github.com/eventtalk/formbuilder/internal/config"
	"github.com/gofiber/fiber/v2"
)

func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024,
	})

	app.Static("/uploads", "./uploads", fiber.Static{
		Compress:  true,
		ByteRange: true,
		Browse:    false,
		MaxAge:    3600,
	})

	SetupRoutes(app, cfg)

	return app
}
