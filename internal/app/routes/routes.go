package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nadira/campusconduct/internal/app/controllers"
	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	staffController *controllers.StaffController,
	studentController *controllers.StudentController,
	reviewController *controllers.ReviewController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public Student routes ---
	students := v1.Group("/students")
	{
		students.POST("", studentController.AddStudent)
		students.GET("/:studentId", studentController.GetStudent)
		students.GET("/:studentId/reviews", reviewController.StudentReviews)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Authoring a review requires a staff token; the reviewer is the
		// token subject
		authenticated.POST("/students/:studentId/reviews", reviewController.AddReview)

		staff := authenticated.Group("/staff")
		{
			staff.GET("/:id/reviews", staffController.StaffReviews)

			// Admin-only staff management
			staffAdminProtected := staff.Group("")
			staffAdminProtected.Use(authMiddleware.AdminRequired())
			{
				staffAdminProtected.POST("", staffController.CreateStaff)
				staffAdminProtected.PATCH("/:id", staffController.RenameStaff)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
