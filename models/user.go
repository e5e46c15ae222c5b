package models

import (
	"time"
)

// User is a customer account. Providers live in their own collection with a
// separate credential namespace, so emails are only unique per collection.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role" gorm:"default:customer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitize blanks the password hash so it never reaches a response body.
func (u *User) Sanitize() {
	u.Password = ""
}
