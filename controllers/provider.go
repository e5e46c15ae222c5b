package controllers

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autocarehub/backend/models"
	"github.com/autocarehub/backend/utils"
)

// ProviderController handles the provider directory: registration, login,
// search listings and profile management.
type ProviderController struct {
	DB *gorm.DB
}

func NewProviderController(db *gorm.DB) *ProviderController {
	return &ProviderController{DB: db}
}

// Register creates a provider account. Providers are auto-approved; the
// approved flag is kept only for schema compatibility.
func (ctl *ProviderController) Register(c *fiber.Ctx) error {
	provider := new(models.Provider)
	if err := c.BodyParser(provider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var existing models.Provider
	if ctl.DB.Where("email = ?", provider.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provider already exists with this email",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(provider.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}
	provider.Password = string(hashed)
	provider.Availability = true
	provider.Approved = true

	if err := ctl.DB.Create(provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create provider",
			Error:   err.Error(),
		})
	}

	provider.Sanitize()
	return c.Status(fiber.StatusCreated).JSON(provider)
}

// Login authenticates a provider and issues a token pair.
func (ctl *ProviderController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var provider models.Provider
	if ctl.DB.Where("email = ?", input.Email).First(&provider).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	access, refresh, err := utils.IssueTokens(provider.ID, provider.Email, "provider")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	provider.Sanitize()
	return c.JSON(fiber.Map{
		"token":        access,
		"refreshToken": refresh,
		"provider":     provider,
	})
}

// List returns every provider, password-stripped.
func (ctl *ProviderController) List(c *fiber.Ctx) error {
	var providers []models.Provider
	if err := ctl.DB.Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}
	for i := range providers {
		providers[i].Sanitize()
	}
	return c.JSON(providers)
}

// ListAvailable returns providers currently taking bookings.
func (ctl *ProviderController) ListAvailable(c *fiber.Ctx) error {
	var providers []models.Provider
	if err := ctl.DB.Where("availability = ?", true).Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}
	for i := range providers {
		providers[i].Sanitize()
	}
	return c.JSON(providers)
}

// ListByServiceType filters available providers by a case-insensitive
// substring match on their service type.
func (ctl *ProviderController) ListByServiceType(c *fiber.Ctx) error {
	serviceType, err := url.PathUnescape(c.Params("serviceType"))
	if err != nil {
		serviceType = c.Params("serviceType")
	}

	// Escape LIKE metacharacters so a literal % or _ in the path segment
	// does not act as a wildcard.
	pattern := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).
		Replace(strings.ToLower(serviceType))

	var providers []models.Provider
	if err := ctl.DB.
		Where("availability = ?", true).
		Where(`LOWER(service_type) LIKE ? ESCAPE '\'`, "%"+pattern+"%").
		Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}
	for i := range providers {
		providers[i].Sanitize()
	}
	return c.JSON(providers)
}

// GetByID returns a single provider.
func (ctl *ProviderController) GetByID(c *fiber.Ctx) error {
	var provider models.Provider
	if err := ctl.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}
	provider.Sanitize()
	return c.JSON(provider)
}

// UpdateStatus flips a provider's availability. An explicit availability
// field wins over the convenience status string ("active" means available).
// The flag is written with a single-field atomic update rather than a
// read-modify-write save.
func (ctl *ProviderController) UpdateStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status       string `json:"status"`
		Availability *bool  `json:"availability"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var provider models.Provider
	if err := ctl.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	var availability bool
	switch {
	case input.Availability != nil:
		availability = *input.Availability
	case input.Status != "":
		availability = input.Status == "active"
	default:
		provider.Sanitize()
		return c.JSON(fiber.Map{
			"message":  "Provider status updated successfully",
			"provider": provider,
		})
	}

	if err := ctl.DB.Model(&provider).Update("availability", availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider status",
			Error:   err.Error(),
		})
	}

	provider.Sanitize()
	return c.JSON(fiber.Map{
		"message":  "Provider status updated successfully",
		"provider": provider,
	})
}

// UpdateProfile sparsely updates a provider's profile: only supplied,
// non-empty fields overwrite, via a field-level atomic update.
func (ctl *ProviderController) UpdateProfile(c *fiber.Ctx) error {
	type ProfileInput struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		ServiceType string `json:"serviceType"`
		Location    string `json:"location"`
		Experience  string `json:"experience"`
		Description string `json:"description"`
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var provider models.Provider
	if err := ctl.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.ServiceType != "" {
		updates["service_type"] = input.ServiceType
	}
	if input.Location != "" {
		updates["location"] = input.Location
	}
	if input.Experience != "" {
		updates["experience"] = input.Experience
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}

	if len(updates) > 0 {
		if err := ctl.DB.Model(&provider).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update profile",
				Error:   err.Error(),
			})
		}
	}

	provider.Sanitize()
	return c.JSON(fiber.Map{
		"message":  "Profile updated successfully",
		"provider": provider,
	})
}

// UploadPicture stores a provider profile picture on Cloudinary and saves
// its secure URL.
func (ctl *ProviderController) UploadPicture(c *fiber.Ctx) error {
	var provider models.Provider
	if err := ctl.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get picture",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open picture",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("provider_%d_%d", provider.ID, time.Now().Unix())
	secureURL, err := utils.UploadToCloudinary(f, publicID, "provider_pictures")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload picture",
			Error:   err.Error(),
		})
	}

	if err := ctl.DB.Model(&provider).Update("profile_picture", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save picture URL",
			Error:   err.Error(),
		})
	}

	provider.Sanitize()
	return c.JSON(provider)
}

// Delete removes a provider permanently. Bookings referencing the provider
// are left in place, so dangling references are possible.
func (ctl *ProviderController) Delete(c *fiber.Ctx) error {
	var provider models.Provider
	if err := ctl.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	if err := ctl.DB.Delete(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete provider",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Provider deleted successfully",
	})
}

// Me returns the profile of the authenticated provider.
func (ctl *ProviderController) Me(c *fiber.Ctx) error {
	providerID := c.Locals("userID").(uint)

	var provider models.Provider
	if err := ctl.DB.First(&provider, providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	provider.Sanitize()
	return c.JSON(provider)
}
