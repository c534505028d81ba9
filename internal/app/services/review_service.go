package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/repositories"
	"github.com/nadira/campusconduct/internal/pkg/validation"
)

// reviewService implements ReviewService
type reviewService struct {
	reviewRepo  repositories.IReviewRepository
	studentRepo repositories.IStudentRepository
	staffRepo   repositories.IStaffRepository
	logger      zerolog.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo repositories.IReviewRepository,
	studentRepo repositories.IStudentRepository,
	staffRepo repositories.IStaffRepository,
	logger zerolog.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// AddReview appends one immutable review row. The student and reviewer
// must both exist, the text must be non-empty and the rating within 1-5.
func (s *reviewService) AddReview(ctx context.Context, studentID, text string, rating int, reviewerID int64) (*models.Review, error) {
	if err := validation.ValidateReviewText(text); err != nil {
		return nil, err
	}
	if err := validation.ValidateRating(rating); err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.GetByStudentID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.staffRepo.GetByID(ctx, reviewerID); err != nil {
		return nil, err
	}

	review := &models.Review{
		StudentID:  studentID,
		ReviewerID: reviewerID,
		Text:       text,
		Rating:     rating,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", studentID).Int64("reviewerId", reviewerID).
		Int("rating", rating).Msg("Review added")

	return review, nil
}

// ReviewsForStudent returns the student's reviews in insertion order,
// each joined with the reviewer's current display name. A student with
// no reviews yields an empty list, never nil.
func (s *reviewService) ReviewsForStudent(ctx context.Context, studentID string) ([]dto.ReviewView, error) {
	if _, err := s.studentRepo.GetByStudentID(ctx, studentID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, reviews)
}

// ReviewsForStaff returns the reviews authored by a staff member in
// insertion order.
func (s *reviewService) ReviewsForStaff(ctx context.Context, staffID int64) ([]dto.ReviewView, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByReviewerID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, reviews)
}

// buildViews resolves reviewer names at read time so a renamed reviewer
// is reflected in older reviews.
func (s *reviewService) buildViews(ctx context.Context, reviews []*models.Review) ([]dto.ReviewView, error) {
	views := make([]dto.ReviewView, 0, len(reviews))
	reviewers := map[int64]*models.Staff{}

	for _, review := range reviews {
		reviewer, ok := reviewers[review.ReviewerID]
		if !ok {
			var err error
			reviewer, err = s.staffRepo.GetByID(ctx, review.ReviewerID)
			if err != nil {
				return nil, fmt.Errorf("error resolving reviewer %d: %w", review.ReviewerID, err)
			}
			reviewers[review.ReviewerID] = reviewer
		}

		views = append(views, dto.ReviewView{
			StudentID: review.StudentID,
			Text:      review.Text,
			Rating:    review.Rating,
			Reviewer:  reviewer.DisplayName(),
		})
	}

	return views, nil
}
