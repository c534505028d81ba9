package validation

import (
	"regexp"
	"strings"

	"github.com/nadira/campusconduct/internal/pkg/apperrors"
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	studentIDRegex = regexp.MustCompile(`^\d{9}$`)
)

// Student IDs that pass the format check but are reserved placeholders
var reservedStudentIDs = map[string]struct{}{
	"000000000": {},
	"999999999": {},
}

// ValidateEmail checks that an email address is present and well formed
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.ErrInvalidEmail
	}
	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// ValidateStudentID checks the external student identifier: a 9-digit
// numeric string that is not a reserved placeholder.
func ValidateStudentID(studentID string) error {
	if !studentIDRegex.MatchString(studentID) {
		return apperrors.ErrInvalidStudentID
	}
	if _, reserved := reservedStudentIDs[studentID]; reserved {
		return apperrors.ErrInvalidStudentID
	}
	return nil
}

// ValidateRating checks that a review rating is within the documented 1-5 domain
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.ErrInvalidRating
	}
	return nil
}

// ValidateReviewText checks that review text is non-empty
func ValidateReviewText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.ErrEmptyReview
	}
	return nil
}
