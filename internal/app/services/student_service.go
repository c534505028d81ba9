package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/repositories"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
	"github.com/nadira/campusconduct/internal/pkg/validation"
)

// studentService implements StudentService
type studentService struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// AddStudent registers a new student record
func (s *studentService) AddStudent(ctx context.Context, req *dto.AddStudentRequest) (*models.Student, error) {
	if err := validation.ValidateStudentID(req.StudentID); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.StudentIDExists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking if student ID exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentIDAlreadyExists
	}

	exists, err = s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student := &models.Student{
		StudentID: req.StudentID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", student.StudentID).Msg("Student added")

	return student, nil
}

// GetStudent retrieves a student by the external student identifier
func (s *studentService) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentRepo.GetByStudentID(ctx, studentID)
}
