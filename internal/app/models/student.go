package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`                          // Surrogate key for the student record
	StudentID string    `json:"studentId" db:"student_id" example:"816000001"`   // External 9-digit student identifier (unique)
	FirstName string    `json:"firstName" db:"first_name" example:"Jane"`        // Student's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`           // Student's last name
	Email     string    `json:"email" db:"email" example:"jane.doe@my.uwi.edu"`  // Student's email address (unique)
	CreatedAt time.Time `json:"createdAt" db:"created_at"`                       // Timestamp when the record was created
}
