package entity

import (
	"time"
)

// Listing is a published job posting (aviso).
type Listing struct {
	ID          string
	Title       string
	Description string
	CompanyID   string
	Location    string
	Salary      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
