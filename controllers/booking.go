package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/autocarehub/backend/models"
	"github.com/autocarehub/backend/utils"
)

// BookingController handles the booking lifecycle: creation, per-party
// listings and status transitions.
type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// Create persists a new booking after checking that both referenced
// accounts exist. New bookings always start out pending; any status the
// client supplies is ignored. Overlapping bookings for the same provider
// are allowed.
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	type BookingInput struct {
		UserID           uint   `json:"userId"`
		ProviderID       uint   `json:"providerId"`
		Date             string `json:"date"`
		VehicleType      string `json:"vehicleType"`
		IssueDescription string `json:"issueDescription"`
		ContactPhone     string `json:"contactPhone"`
		Note             string `json:"note"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	var provider models.Provider
	if err := ctl.DB.First(&user, input.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User or Provider not found",
		})
	}
	if err := ctl.DB.First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User or Provider not found",
		})
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format",
		})
	}

	booking := models.Booking{
		UserID:           input.UserID,
		ProviderID:       input.ProviderID,
		Date:             date,
		VehicleType:      input.VehicleType,
		IssueDescription: input.IssueDescription,
		ContactPhone:     input.ContactPhone,
		Note:             input.Note,
	}

	if err := ctl.DB.Omit("User", "Provider").Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ListForUser returns a customer's bookings with each provider embedded.
func (ctl *BookingController) ListForUser(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := ctl.DB.Preload("Provider").
		Where("user_id = ?", c.Params("userId")).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	for i := range bookings {
		bookings[i].Provider.Sanitize()
	}
	return c.JSON(bookings)
}

// ListForProvider returns a provider's bookings with each customer embedded.
func (ctl *BookingController) ListForProvider(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := ctl.DB.Preload("User").
		Where("provider_id = ?", c.Params("providerId")).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	for i := range bookings {
		bookings[i].User.Sanitize()
	}
	return c.JSON(bookings)
}

// UpdateStatus overwrites a booking's status with a single-field atomic
// update. The value must be one of the four enumerated states, but the
// transition itself is not checked: which moves are sensible is left to
// the clients, so a completed booking can legally go back to pending.
func (ctl *BookingController) UpdateStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status string `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	status := models.BookingStatus(input.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking status",
		})
	}

	var booking models.Booking
	if err := ctl.DB.First(&booking, c.Params("bookingId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := ctl.DB.Model(&booking).Update("status", status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update booking status",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}
