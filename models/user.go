package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the single administrator account. The plaintext password is never
// stored; PasswordHash is a bcrypt digest.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"type:text;not null;unique"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
