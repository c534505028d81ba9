package dto

import "github.com/nadira/campusconduct/internal/app/models"

// CreateStaffRequest represents a request to create a staff account
type CreateStaffRequest struct {
	Prefix    string `json:"prefix" binding:"required" example:"Mr."`
	FirstName string `json:"firstName" binding:"required" example:"Bobby"`
	LastName  string `json:"lastName" binding:"required" example:"Butterbread"`
	Email     string `json:"email" binding:"required,email" example:"bobby.butterbread@mail.com"`
	IsAdmin   bool   `json:"isAdmin" example:"false"`
	Password  string `json:"password" binding:"required" example:"bobbypass"`
}

// RenameStaffRequest represents the administrative first-name update,
// the only mutation allowed on a staff record
type RenameStaffRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Robert"`
}

// StaffView represents staff information returned by the API
type StaffView struct {
	ID          int64  `json:"id" example:"1"`
	Prefix      string `json:"prefix" example:"Mr."`
	FirstName   string `json:"firstName" example:"Bob"`
	LastName    string `json:"lastName" example:"Bobberson"`
	Email       string `json:"email" example:"bob.bobberson@mail.com"`
	IsAdmin     bool   `json:"isAdmin" example:"true"`
	CreatedByID *int64 `json:"createdById,omitempty" example:"1"`
}

// NewStaffView builds a StaffView from a staff model
func NewStaffView(staff *models.Staff) *StaffView {
	if staff == nil {
		return nil
	}
	return &StaffView{
		ID:          staff.ID,
		Prefix:      staff.Prefix,
		FirstName:   staff.FirstName,
		LastName:    staff.LastName,
		Email:       staff.Email,
		IsAdmin:     staff.IsAdmin,
		CreatedByID: staff.CreatedByID,
	}
}
