package dto

import "github.com/nadira/campusconduct/internal/app/models"

// AddStudentRequest represents a request to register a student record
type AddStudentRequest struct {
	StudentID string `json:"studentId" binding:"required,len=9,numeric" example:"816000001"`
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane.doe@my.uwi.edu"`
}

// StudentView represents student information returned by the API
type StudentView struct {
	ID        int64  `json:"id" example:"1"`
	StudentID string `json:"studentId" example:"816000001"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" example:"jane.doe@my.uwi.edu"`
}

// NewStudentView builds a StudentView from a student model
func NewStudentView(student *models.Student) *StudentView {
	if student == nil {
		return nil
	}
	return &StudentView{
		ID:        student.ID,
		StudentID: student.StudentID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
	}
}
