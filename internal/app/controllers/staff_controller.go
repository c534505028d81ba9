package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/services"
	"github.com/nadira/campusconduct/internal/middleware"
)

// StaffController handles staff account operations
type StaffController struct {
	staffService  services.StaffService
	reviewService services.ReviewService
	logger        zerolog.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService, reviewService services.ReviewService, logger zerolog.Logger) *StaffController {
	return &StaffController{
		staffService:  staffService,
		reviewService: reviewService,
		logger:        logger,
	}
}

// CreateStaff handles staff account creation by an authenticated admin
// @Summary Create a staff account
// @Description Creates a new staff member (regular or admin). The authenticated actor becomes the creator of record and must be an admin.
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Staff account information"
// @Success 201 {object} dto.APIResponse{data=dto.StaffView} "Staff account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Requester is not an admin"
// @Failure 409 {object} dto.ErrorResponse "Failed to create record"
// @Security BearerAuth
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staffID, ok := middleware.StaffIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.staffService.CreateStaff(ctx.Request.Context(), &req, &staffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewStaffView(staff), "Staff account created successfully"))
}

// RenameStaff handles the administrative first-name update
// @Summary Rename a staff member
// @Description Updates a staff member's first name. No other staff attribute may change.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param request body dto.RenameStaffRequest true "New first name"
// @Success 200 {object} dto.APIResponse{data=dto.StaffView} "Staff member renamed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [patch]
func (c *StaffController) RenameStaff(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RenameStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.staffService.RenameStaff(ctx.Request.Context(), id, req.FirstName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStaffView(staff), "Staff member renamed successfully"))
}

// StaffReviews lists reviews authored by a staff member
// @Summary List reviews authored by a staff member
// @Description Returns the staff member's reviews in the order they were written
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewView} "Reviews authored by the staff member"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id}/reviews [get]
func (c *StaffController) StaffReviews(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	reviews, err := c.reviewService.ReviewsForStaff(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reviews, ""))
}
