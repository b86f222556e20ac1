// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. Token holds the user's current
// session token; it is empty until the first sign-in and overwritten on every
// subsequent sign-in, so at most one issued token is valid per user.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Token     string    `gorm:"not null;default:''" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
