// Package services holds the core business logic: authentication,
// the staff-creation authorization policy, and review aggregation.
package services

import (
	"context"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/app/models/dto"
)

// AuthService verifies credentials and issues signed tokens
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// StaffService gates staff account creation behind the admin policy
type StaffService interface {
	// CreateStaff applies the creation decision table. createdByID is the
	// requesting actor, nil for the bootstrap path.
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest, createdByID *int64) (*models.Staff, error)
	GetStaff(ctx context.Context, id int64) (*models.Staff, error)
	RenameStaff(ctx context.Context, id int64, firstName string) (*models.Staff, error)
}

// StudentService manages student records
type StudentService interface {
	AddStudent(ctx context.Context, req *dto.AddStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
}

// ReviewService appends reviews and builds reviewer-joined views
type ReviewService interface {
	AddReview(ctx context.Context, studentID, text string, rating int, reviewerID int64) (*models.Review, error)
	ReviewsForStudent(ctx context.Context, studentID string) ([]dto.ReviewView, error)
	ReviewsForStaff(ctx context.Context, staffID int64) ([]dto.ReviewView, error)
}
