package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
	"github.com/nadira/campusconduct/internal/pkg/dberrors"
)

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

// Create inserts a new review row
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (student_id, reviewer_id, text, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		review.StudentID, review.ReviewerID, review.Text, review.Rating).
		Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating review: %w", err)
	}

	return nil
}

// ListByStudentID retrieves all reviews for a student in creation order
func (r *ReviewRepository) ListByStudentID(ctx context.Context, studentID string) ([]*models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, reviewer_id, text, rating, created_at
		FROM reviews
		WHERE student_id = $1
		ORDER BY id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews for student: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// ListByReviewerID retrieves all reviews authored by a staff member in creation order
func (r *ReviewRepository) ListByReviewerID(ctx context.Context, reviewerID int64) ([]*models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, reviewer_id, text, rating, created_at
		FROM reviews
		WHERE reviewer_id = $1
		ORDER BY id`,
		reviewerID)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews for reviewer: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows pgx.Rows) ([]*models.Review, error) {
	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(
			&review.ID, &review.StudentID, &review.ReviewerID,
			&review.Text, &review.Rating, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}
	return reviews, nil
}
