package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/autocarehub/backend/controllers"
)

// SetupBookingRoutes configures all booking lifecycle routes.
func SetupBookingRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewBookingController(db)

	bookings := app.Group("/api/bookings")
	bookings.Post("/", ctl.Create)
	bookings.Get("/user/:userId", ctl.ListForUser)
	bookings.Get("/provider/:providerId", ctl.ListForProvider)
	bookings.Put("/:bookingId/status", ctl.UpdateStatus)
}
