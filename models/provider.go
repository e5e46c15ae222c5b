package models

import (
	"time"
)

// Provider is a service professional offering bookable auto-repair work.
//
// Approved is a vestigial moderation flag: registration sets it true and no
// operation ever reads it. It stays in the schema for compatibility with
// existing data.
type Provider struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	Password       string    `json:"password,omitempty"`
	Phone          string    `json:"phone"`
	ServiceType    string    `json:"serviceType"`
	Location       string    `json:"location"`
	Experience     string    `json:"experience,omitempty"`
	Description    string    `json:"description,omitempty"`
	Availability   bool      `json:"availability" gorm:"default:true"`
	Approved       bool      `json:"approved" gorm:"default:false"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Sanitize blanks the password hash so it never reaches a response body.
func (p *Provider) Sanitize() {
	p.Password = ""
}
