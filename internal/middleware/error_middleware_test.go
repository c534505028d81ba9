package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nadira/campusconduct/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Bad email or password given"},
		{"not admin", apperrors.ErrNotAdmin, http.StatusForbidden, "Not authorized to create staff members"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "Failed to create record"},
		{"duplicate student id", apperrors.ErrStudentIDAlreadyExists, http.StatusConflict, "Failed to create record"},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, "Student not found"},
		{"staff not found", apperrors.ErrStaffNotFound, http.StatusNotFound, "Staff member not found"},
		{"invalid student id", apperrors.ErrInvalidStudentID, http.StatusBadRequest, "Invalid student ID format"},
		{"invalid rating", apperrors.ErrInvalidRating, http.StatusBadRequest, "Rating must be between 1 and 5"},
		{"empty review", apperrors.ErrEmptyReview, http.StatusBadRequest, ""},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token"},
		{"wrapped conflict", apperrors.NewConflictError("duplicate staff record"), http.StatusConflict, "Failed to create record"},
		{"wrapped forbidden", apperrors.NewForbiddenError("admin staff only"), http.StatusForbidden, "Permission denied"},
		{"wrapped validation", apperrors.NewCustomError(apperrors.ErrValidationFailed, "first name is required"), http.StatusBadRequest, "first name is required"},
		{"unexpected", errors.New("pool exhausted"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

// Conflict and internal responses must not leak the underlying cause.
func TestHandleAPIErrorDoesNotLeakDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	HandleAPIError(c, apperrors.ErrEmailAlreadyExists)
	assert.NotContains(t, rec.Body.String(), "email")

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	HandleAPIError(c, errors.New("connection refused to 10.0.0.3:5432"))
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}
