package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/autocarehub/backend/controllers"
	"github.com/autocarehub/backend/middleware"
)

// SetupUserRoutes configures all customer account routes.
func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewUserController(db)

	users := app.Group("/api/users")

	// Public routes
	users.Post("/register", ctl.Register)
	users.Post("/login", ctl.Login)
	users.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	users.Get("/me", middleware.Protected(), ctl.Me)
	users.Post("/logout", middleware.Protected(), controllers.Logout)
}
