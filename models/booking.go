package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the four enumerated booking states.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Booking links one customer and one provider for a scheduled service
// request. It holds no ownership over either side: deleting a provider
// leaves its bookings behind with a dangling reference.
type Booking struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	UserID           uint          `json:"userId" gorm:"not null"`
	User             User          `json:"user" gorm:"foreignKey:UserID"`
	ProviderID       uint          `json:"providerId" gorm:"not null"`
	Provider         Provider      `json:"provider" gorm:"foreignKey:ProviderID"`
	Date             time.Time     `json:"date"`
	VehicleType      string        `json:"vehicleType"`
	IssueDescription string        `json:"issueDescription"`
	ContactPhone     string        `json:"contactPhone"`
	Note             string        `json:"note,omitempty"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// BeforeCreate pins every new booking to pending, whatever the client sent.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	b.Status = StatusPending
	return nil
}
