package db

import (
	"gorm.io/gorm"

	"github.com/autocarehub/backend/models"
)

// Migrate applies the schema for every collection on the given handle.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.Booking{},
	)
}
