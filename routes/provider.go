package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/autocarehub/backend/controllers"
	"github.com/autocarehub/backend/middleware"
)

// SetupProviderRoutes configures all provider directory routes.
func SetupProviderRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewProviderController(db)

	providers := app.Group("/api/providers")

	// Authentication routes
	providers.Post("/register", ctl.Register)
	providers.Post("/login", ctl.Login)
	providers.Post("/refresh", controllers.RefreshToken)
	providers.Get("/me", middleware.Protected(), ctl.Me)
	providers.Post("/logout", middleware.Protected(), controllers.Logout)

	// Directory routes. The fixed paths must be registered before /:id.
	providers.Get("/", ctl.List)
	providers.Get("/available", ctl.ListAvailable)
	providers.Get("/service/:serviceType", ctl.ListByServiceType)
	providers.Get("/:id", ctl.GetByID)

	// Management routes
	providers.Put("/:id/status", ctl.UpdateStatus)
	providers.Put("/:id/profile", ctl.UpdateProfile)
	providers.Post("/:id/picture", ctl.UploadPicture)
	providers.Delete("/:id", ctl.Delete)
}
