package models

import "time"

// Review defines the review model based on the 'reviews' table.
// Reviews are immutable once written.
type Review struct {
	ID         int64     `json:"id" db:"id" example:"1"`                        // Unique identifier for the review
	StudentID  string    `json:"studentId" db:"student_id" example:"816000001"` // External identifier of the reviewed student
	ReviewerID int64     `json:"reviewerId" db:"reviewer_id" example:"1"`       // Staff member that authored the review
	Text       string    `json:"text" db:"text" example:"Great student"`        // Free-text body of the review
	Rating     int       `json:"rating" db:"rating" example:"5"`                // Integer rating, 1-5
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`                     // Timestamp when the review was written

	// Relations (populated when needed)
	Reviewer *Staff   `json:"reviewer,omitempty"` // Authoring staff member
	Student  *Student `json:"student,omitempty"`  // Reviewed student
}
