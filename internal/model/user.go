package model

import "time"

// User represents a registered reviewer.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	CreatedOn    time.Time `json:"created_on" gorm:"column:created_on;not null"`
}

// Profile is the public projection of a user served by the directory endpoint.
type Profile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}
