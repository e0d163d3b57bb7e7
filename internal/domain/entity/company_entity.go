package entity

import (
	"time"
)

// Company is an employer (empresa) that owns job listings.
type Company struct {
	ID          string
	Name        string
	Description string
	Website     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
