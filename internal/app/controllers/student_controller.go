package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/services"
	"github.com/nadira/campusconduct/internal/middleware"
)

// StudentController handles student record operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// AddStudent handles student registration
// @Summary Add a student
// @Description Registers a new student record with a unique 9-digit student ID
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.AddStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentView} "Student added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or malformed student ID"
// @Failure 409 {object} dto.ErrorResponse "Failed to create record"
// @Router /students [post]
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.AddStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewStudentView(student), "Student added successfully"))
}

// GetStudent handles student lookup by external identifier
// @Summary Search for a student
// @Description Retrieves a student record by its 9-digit student ID
// @Tags students
// @Produce json
// @Param studentId path string true "External student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentView} "Student found"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentView(student), ""))
}
