package dto

// AddReviewRequest represents a request to author a review against a student
type AddReviewRequest struct {
	Text   string `json:"text" binding:"required" example:"Great student"`
	Rating int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
}

// ReviewView represents a review joined with the reviewer's identity.
// Reviewer is resolved at read time so it always reflects the
// reviewer's current name.
type ReviewView struct {
	StudentID string `json:"studentId" example:"816000001"`
	Text      string `json:"text" example:"Great student"`
	Rating    int    `json:"rating" example:"5"`
	Reviewer  string `json:"reviewer" example:"Mr. Bob Bobberson"`
}
