package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/repositories"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
	"github.com/nadira/campusconduct/internal/pkg/auth"
	"github.com/nadira/campusconduct/internal/pkg/validation"
)

// staffService implements StaffService
type staffService struct {
	staffRepo repositories.IStaffRepository
	logger    zerolog.Logger
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo repositories.IStaffRepository, logger zerolog.Logger) StaffService {
	return &staffService{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// CreateStaff applies the staff-creation decision table, in order:
//
//  1. duplicate email rejects before anything else, so a duplicate
//     attempt never learns anything about requester privilege;
//  2. a resolved admin creator creates the account with created_by set;
//  3. a resolved non-admin creator is rejected regardless of the
//     requested isAdmin value;
//  4. an absent or unresolvable creator is the bootstrap path: the
//     account is created with created_by null, honoring isAdmin.
func (s *staffService) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest, createdByID *int64) (*models.Staff, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.staffRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	var creator *models.Staff
	if createdByID != nil && *createdByID != 0 {
		creator, err = s.staffRepo.GetByID(ctx, *createdByID)
		if err != nil && !errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, fmt.Errorf("error resolving creator: %w", err)
		}
	}

	if creator != nil && !creator.IsAdmin {
		s.logger.Warn().Int64("createdById", creator.ID).Str("email", req.Email).
			Msg("Non-admin staff attempted to create a staff account")
		return nil, apperrors.ErrNotAdmin
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	staff := &models.Staff{
		Prefix:    req.Prefix,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
		IsAdmin:   req.IsAdmin,
	}
	if creator != nil {
		staff.CreatedByID = &creator.ID
	}

	// The repository's uniqueness constraint decides races on the same
	// email; a losing insert surfaces as a duplicate, same as rule 1.
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("staffId", staff.ID).Bool("isAdmin", staff.IsAdmin).
		Msg("Staff account created")

	return staff, nil
}

// GetStaff retrieves a staff member by ID
func (s *staffService) GetStaff(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// RenameStaff updates a staff member's first name, the only mutation
// allowed on a staff record.
func (s *staffService) RenameStaff(ctx context.Context, id int64, firstName string) (*models.Staff, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "first name is required")
	}

	if err := s.staffRepo.UpdateFirstName(ctx, id, firstName); err != nil {
		return nil, err
	}

	return s.staffRepo.GetByID(ctx, id)
}

func (s *staffService) validateCreateRequest(req *dto.CreateStaffRequest) error {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "first and last name are required")
	}
	if req.Password == "" {
		return apperrors.ErrInvalidPassword
	}
	return validation.ValidateEmail(req.Email)
}
