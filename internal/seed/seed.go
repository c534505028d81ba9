// Package seed loads bootstrap staff accounts and tabular student/review
// data into the record store. Imports are idempotent: rows whose keys
// already exist are logged and skipped, never fatal.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/services"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
)

// Seeder drives the seed process through the service layer so every row
// passes the same policy and validation as API traffic.
type Seeder struct {
	staffService   services.StaffService
	studentService services.StudentService
	reviewService  services.ReviewService
	logger         zerolog.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(
	staffService services.StaffService,
	studentService services.StudentService,
	reviewService services.ReviewService,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{
		staffService:   staffService,
		studentService: studentService,
		reviewService:  reviewService,
		logger:         logger,
	}
}

// CreateDefaultStaff creates the bootstrap staff accounts (one admin, one
// regular) through the unauthenticated bootstrap path. Existing accounts
// are skipped.
func (s *Seeder) CreateDefaultStaff(ctx context.Context) error {
	defaults := []*dto.CreateStaffRequest{
		{
			Prefix:    "Mr.",
			FirstName: "Bob",
			LastName:  "Bobberson",
			Email:     "bob.bobberson@mail.com",
			IsAdmin:   true,
			Password:  "bobpass",
		},
		{
			Prefix:    "Mr.",
			FirstName: "Bobby",
			LastName:  "Butterbread",
			Email:     "bobby.butterbread@mail.com",
			IsAdmin:   false,
			Password:  "bobbypass",
		},
	}

	for _, req := range defaults {
		if _, err := s.staffService.CreateStaff(ctx, req, nil); err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				s.logger.Debug().Str("email", req.Email).Msg("Default staff account already exists, skipping")
				continue
			}
			return fmt.Errorf("failed to create default staff %s: %w", req.Email, err)
		}
		s.logger.Info().Str("email", req.Email).Bool("isAdmin", req.IsAdmin).Msg("Default staff account created")
	}

	return nil
}

// ImportStudents reads a semicolon-delimited students file with a
// student_id;firstname;lastname;email header row.
func (s *Seeder) ImportStudents(ctx context.Context, path string) error {
	rows, err := readRecords(path)
	if err != nil {
		return err
	}

	for _, row := range rows {
		req := &dto.AddStudentRequest{
			StudentID: row["student_id"],
			FirstName: row["firstname"],
			LastName:  row["lastname"],
			Email:     row["email"],
		}

		if _, err := s.studentService.AddStudent(ctx, req); err != nil {
			if errors.Is(err, apperrors.ErrStudentIDAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				s.logger.Info().Str("studentId", req.StudentID).Msg("Student already exists, skipping")
				continue
			}
			s.logger.Error().Err(err).Str("studentId", req.StudentID).Msg("Failed to import student row")
			continue
		}
	}

	return nil
}

// ImportReviews reads a semicolon-delimited reviews file with a
// text;rating;student_id;reviewer_id header row. Rows whose review is
// already recorded for the student are skipped, so re-running the seed
// never duplicates review rows.
func (s *Seeder) ImportReviews(ctx context.Context, path string) error {
	rows, err := readRecords(path)
	if err != nil {
		return err
	}

	existing := map[string][]dto.ReviewView{}
	for _, row := range rows {
		rating, err := strconv.Atoi(row["rating"])
		if err != nil {
			s.logger.Error().Str("rating", row["rating"]).Msg("Invalid rating in review row, skipping")
			continue
		}
		reviewerID, err := strconv.ParseInt(row["reviewer_id"], 10, 64)
		if err != nil {
			s.logger.Error().Str("reviewerId", row["reviewer_id"]).Msg("Invalid reviewer ID in review row, skipping")
			continue
		}

		studentID := row["student_id"]
		views, ok := existing[studentID]
		if !ok {
			views, err = s.reviewService.ReviewsForStudent(ctx, studentID)
			if err != nil {
				s.logger.Error().Err(err).Str("studentId", studentID).Msg("Failed to import review row")
				continue
			}
			existing[studentID] = views
		}

		reviewer, err := s.staffService.GetStaff(ctx, reviewerID)
		if err != nil {
			s.logger.Error().Err(err).Int64("reviewerId", reviewerID).Msg("Failed to import review row")
			continue
		}

		if reviewRecorded(views, row["text"], rating, reviewer.DisplayName()) {
			s.logger.Info().Str("studentId", studentID).Msg("Review already recorded, skipping")
			continue
		}

		if _, err := s.reviewService.AddReview(ctx, studentID, row["text"], rating, reviewerID); err != nil {
			s.logger.Error().Err(err).Str("studentId", studentID).Msg("Failed to import review row")
			continue
		}
		existing[studentID] = append(existing[studentID], dto.ReviewView{
			StudentID: studentID,
			Text:      row["text"],
			Rating:    rating,
			Reviewer:  reviewer.DisplayName(),
		})
	}

	return nil
}

// reviewRecorded reports whether an equivalent review already exists for
// the student.
func reviewRecorded(views []dto.ReviewView, text string, rating int, reviewer string) bool {
	for _, v := range views {
		if v.Text == text && v.Rating == rating && v.Reviewer == reviewer {
			return true
		}
	}
	return false
}

// Run seeds bootstrap staff, then students, then reviews. Missing data
// files are logged and skipped so a fresh checkout still starts.
func (s *Seeder) Run(ctx context.Context, studentsFile, reviewsFile string) error {
	if err := s.CreateDefaultStaff(ctx); err != nil {
		return err
	}

	for _, item := range []struct {
		path   string
		load   func(context.Context, string) error
		entity string
	}{
		{studentsFile, s.ImportStudents, "students"},
		{reviewsFile, s.ImportReviews, "reviews"},
	} {
		if _, err := os.Stat(item.path); os.IsNotExist(err) {
			s.logger.Warn().Str("path", item.path).Str("entity", item.entity).Msg("Seed file not found, skipping")
			continue
		}
		if err := item.load(ctx, item.path); err != nil {
			return fmt.Errorf("failed to import %s: %w", item.entity, err)
		}
	}

	return nil
}

// readRecords parses a semicolon-delimited CSV file into header-keyed maps
func readRecords(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file row: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
