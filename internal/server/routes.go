package server

import (
	"time"

	"github.com/eventtalk/formbuilder/internal/auth"
	"github.com/eventtalk/formbuilder/internal/config"
	"github.com/eventtalk/formbuilder/internal/form"
	"github.com/eventtalk/formbuilder/internal/media"
	"github.com/eventtalk/formbuilder/internal/submission"
	"github.com/eventtalk/formbuilder/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, cfg *config.Config) {
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Form builder API is running",
		})
	})

	// ==========================================
	// PUBLIC FORM ROUTES (No authentication)
	// Registered before the protected /api/forms group so the submit
	// endpoint stays reachable without a token.
	// ==========================================
	app.Post("/api/forms/:id/submit", submission.SubmitHandler)
	app.Get("/api/public-forms/:id", form.GetPublicFormHandler)
	app.Get("/f/:id", form.PublicFormPageHandler)

	// ==========================================
	// AUTH ROUTES
	// ==========================================
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
	}), auth.RegisterHandler)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.LoginHandler)
	authGroup.Get("/google/login", auth.GoogleLogin)
	authGroup.Get("/google/callback", auth.GoogleCallback)
	authGroup.Post("/refresh", limiter.New(limiter.Config{
		Max:        3,
		Expiration: 5 * time.Minute,
	}), auth.RefreshHandler)
	authGroup.Get("/me", auth.JWTProtected(), auth.MeHandler)
	authGroup.Post("/logout", auth.JWTProtected(), auth.LogoutHandler)

	// ==========================================
	// USER MANAGEMENT (Admin only)
	// ==========================================
	userGroup := app.Group("/api/users")
	userGroup.Use(auth.JWTProtected())
	userGroup.Use(auth.RoleProtected("admin"))
	userGroup.Post("/admin", user.CreateAdminHandler)
	userGroup.Get("/", user.ListUsersHandler)
	userGroup.Get("/:id", user.GetUserHandler)
	userGroup.Put("/:id", user.UpdateUserHandler)
	userGroup.Delete("/:id", user.DeleteUserHandler)

	// ==========================================
	// FORMS
	// ==========================================
	formGroup := app.Group("/api/forms")
	formGroup.Use(auth.JWTProtected())
	formGroup.Get("/", form.ListFormsHandler)
	formGroup.Post("/", form.CreateFormHandler)
	formGroup.Get("/:id", form.GetFormHandler)
	formGroup.Put("/:id", form.UpdateFormHandler)
	formGroup.Delete("/:id", form.DeleteFormHandler)
	formGroup.Post("/:id/publish", form.PublishFormHandler(cfg))
	formGroup.Get("/:id/submissions", submission.ListSubmissionsHandler)

	// ==========================================
	// SUBMISSIONS
	// ==========================================
	app.Delete("/api/submissions/:id", auth.JWTProtected(), submission.DeleteSubmissionHandler)

	// ==========================================
	// EDITOR ASSET UPLOADS
	// ==========================================
	uploadGroup := app.Group("/api/upload")
	uploadGroup.Use(auth.JWTProtected())
	uploadGroup.Post("/", media.UploadAssetHandler)
	uploadGroup.Post("/bulk", media.BulkUploadAssetsHandler)
	uploadGroup.Post("/delete", media.DeleteAssetHandler)
}
