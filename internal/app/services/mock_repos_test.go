package services

import (
	"context"
	"sync"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
)

// In-memory repositories backing the service tests. They enforce the same
// uniqueness rules as the SQL schema, under a mutex, so the concurrency
// tests exercise the same race the database constraint would decide.

type fakeStaffRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{byID: make(map[int64]*models.Staff)}
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Email == staff.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	staff.ID = r.nextID
	copied := *staff
	r.byID[staff.ID] = &copied
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byID[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, apperrors.ErrStaffNotFound
}

func (r *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func (r *fakeStaffRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStaffRepo) UpdateFirstName(_ context.Context, id int64, firstName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return apperrors.ErrStaffNotFound
	}
	s.FirstName = firstName
	return nil
}

type fakeStudentRepo struct {
	mu     sync.Mutex
	nextID int64
	byExt  map[string]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byExt: make(map[string]*models.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byExt[student.StudentID]; ok {
		return apperrors.ErrStudentIDAlreadyExists
	}
	for _, s := range r.byExt {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	student.ID = r.nextID
	copied := *student
	r.byExt[student.StudentID] = &copied
	return nil
}

func (r *fakeStudentRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byExt[studentID]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byExt[studentID]
	return ok, nil
}

func (r *fakeStudentRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byExt {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	nextID  int64
	reviews []*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	review.ID = r.nextID
	copied := *review
	r.reviews = append(r.reviews, &copied)
	return nil
}

func (r *fakeReviewRepo) ListByStudentID(_ context.Context, studentID string) ([]*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*models.Review{}
	for _, rev := range r.reviews {
		if rev.StudentID == studentID {
			copied := *rev
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) ListByReviewerID(_ context.Context, reviewerID int64) ([]*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*models.Review{}
	for _, rev := range r.reviews {
		if rev.ReviewerID == reviewerID {
			copied := *rev
			result = append(result, &copied)
		}
	}
	return result, nil
}
