// Package repositories implements the record store over PostgreSQL.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nadira/campusconduct/internal/app/models"
)

// IStaffRepository defines staff record store operations
type IStaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateFirstName(ctx context.Context, id int64, firstName string) error
}

// IStudentRepository defines student record store operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// IReviewRepository defines review record store operations.
// List queries preserve creation order.
type IReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByStudentID(ctx context.Context, studentID string) ([]*models.Review, error)
	ListByReviewerID(ctx context.Context, reviewerID int64) ([]*models.Review, error)
}

// Repositories combines all repositories
type Repositories struct {
	StaffRepository   *StaffRepository
	StudentRepository *StudentRepository
	ReviewRepository  *ReviewRepository
}

// NewRepositories creates the repository container over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StaffRepository:   NewStaffRepository(db),
		StudentRepository: NewStudentRepository(db),
		ReviewRepository:  NewReviewRepository(db),
	}
}
