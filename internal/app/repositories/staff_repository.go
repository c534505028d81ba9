package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
	"github.com/nadira/campusconduct/internal/pkg/dberrors"
)

// StaffRepository handles staff database operations
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

// Create inserts a new staff record. The email uniqueness constraint is
// the safety net for concurrent creation: exactly one of two racing
// inserts with the same email wins.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO staff (prefix, first_name, last_name, email, password, is_admin, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		staff.Prefix, staff.FirstName, staff.LastName, staff.Email,
		staff.Password, staff.IsAdmin, staff.CreatedByID).Scan(&staff.ID, &staff.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("duplicate staff record")
		}
		return fmt.Errorf("error creating staff: %w", err)
	}

	return nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	staff := &models.Staff{}
	err := r.db.QueryRow(ctx, `
		SELECT id, prefix, first_name, last_name, email, password, is_admin, created_by, created_at
		FROM staff
		WHERE id = $1`,
		id).Scan(
		&staff.ID, &staff.Prefix, &staff.FirstName, &staff.LastName,
		&staff.Email, &staff.Password, &staff.IsAdmin, &staff.CreatedByID, &staff.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error getting staff: %w", err)
	}

	return staff, nil
}

// GetByEmail retrieves a staff member by email (exact match)
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	staff := &models.Staff{}
	err := r.db.QueryRow(ctx, `
		SELECT id, prefix, first_name, last_name, email, password, is_admin, created_by, created_at
		FROM staff
		WHERE email = $1`,
		email).Scan(
		&staff.ID, &staff.Prefix, &staff.FirstName, &staff.LastName,
		&staff.Email, &staff.Password, &staff.IsAdmin, &staff.CreatedByID, &staff.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error getting staff by email: %w", err)
	}

	return staff, nil
}

// EmailExists checks if a staff email already exists
func (r *StaffRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM staff WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateFirstName performs the administrative rename, the only mutation
// defined for staff records.
func (r *StaffRepository) UpdateFirstName(ctx context.Context, id int64, firstName string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE staff
		SET first_name = $1
		WHERE id = $2`,
		firstName, id)

	if err != nil {
		return fmt.Errorf("error renaming staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}
