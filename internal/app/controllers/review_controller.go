package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/services"
	"github.com/nadira/campusconduct/internal/middleware"
)

// ReviewController handles review operations
type ReviewController struct {
	reviewService services.ReviewService
	logger        zerolog.Logger
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService, logger zerolog.Logger) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		logger:        logger,
	}
}

// AddReview handles review creation. The reviewer is the authenticated
// staff member from the token, never the request body.
// @Summary Review a student
// @Description Appends an immutable text review with a 1-5 rating against the student
// @Tags reviews
// @Accept json
// @Produce json
// @Param studentId path string true "External student ID"
// @Param request body dto.AddReviewRequest true "Review text and rating"
// @Success 201 {object} dto.APIResponse "Review added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or rating out of range"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/{studentId}/reviews [post]
func (c *ReviewController) AddReview(ctx *gin.Context) {
	var req dto.AddReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	reviewerID, ok := middleware.StaffIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID := ctx.Param("studentId")
	review, err := c.reviewService.AddReview(ctx.Request.Context(), studentID, req.Text, req.Rating, reviewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", studentID).Int64("reviewerId", reviewerID).Msg("Review created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(review, "Review added successfully"))
}

// StudentReviews lists reviews for a student
// @Summary List a student's reviews
// @Description Returns the student's reviews in insertion order, each with the reviewer's current display name. An empty array is returned when the student has no reviews.
// @Tags reviews
// @Produce json
// @Param studentId path string true "External student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewView} "Reviews for the student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/reviews [get]
func (c *ReviewController) StudentReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.ReviewsForStudent(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reviews, ""))
}
