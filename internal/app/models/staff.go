package models

import (
	"time"
)

// Staff defines the staff model based on the 'staff' table
type Staff struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the staff member
	Prefix      string    `json:"prefix" db:"prefix" example:"Mr."`                         // Title used in display names
	FirstName   string    `json:"firstName" db:"first_name" example:"Bob"`                  // Staff member's first name
	LastName    string    `json:"lastName" db:"last_name" example:"Bobberson"`              // Staff member's last name
	Email       string    `json:"email" db:"email" example:"bob.bobberson@mail.com"`        // Staff member's email address (unique)
	Password    string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	IsAdmin     bool      `json:"isAdmin" db:"is_admin" example:"true"`                     // Whether the staff member may create other staff
	CreatedByID *int64    `json:"createdById,omitempty" db:"created_by" example:"1"`        // Admin that created this record (null for bootstrap accounts)
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the record was created
}

// DisplayName returns the "{prefix} {firstname} {lastname}" form used in review views
func (s *Staff) DisplayName() string {
	return s.Prefix + " " + s.FirstName + " " + s.LastName
}
