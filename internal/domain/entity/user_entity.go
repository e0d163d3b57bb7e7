package entity

import (
	"time"
)

// User is a registered account identified by email.
// PasswordHash holds a bcrypt digest and must never leave the service layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
