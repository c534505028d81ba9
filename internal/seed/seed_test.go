package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/app/services"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
)

// Minimal in-memory stores; enough for the seeder to run the real services.

type memStaffRepo struct {
	nextID int64
	byID   map[int64]*models.Staff
}

func (r *memStaffRepo) Create(_ context.Context, staff *models.Staff) error {
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

func (r *memStaffRepo) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStaffNotFound
}

func (r *memStaffRepo) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	for _, s := range r.byID {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func (r *memStaffRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, s := range r.byID {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memStaffRepo) UpdateFirstName(_ context.Context, id int64, firstName string) error {
	s, ok := r.byID[id]
	if !ok {
		return apperrors.ErrStaffNotFound
	}
	s.FirstName = firstName
	return nil
}

type memStudentRepo struct {
	nextID int64
	byExt  map[string]*models.Student
}

func (r *memStudentRepo) Create(_ context.Context, student *models.Student) error {
	if _, ok := r.byExt[student.StudentID]; ok {
		return apperrors.ErrStudentIDAlreadyExists
	}
	r.nextID++
	student.ID = r.nextID
	copied := *student
	r.byExt[student.StudentID] = &copied
	return nil
}

func (r *memStudentRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	if s, ok := r.byExt[studentID]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *memStudentRepo) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	_, ok := r.byExt[studentID]
	return ok, nil
}

func (r *memStudentRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, s := range r.byExt {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memReviewRepo struct {
	nextID  int64
	reviews []*models.Review
}

func (r *memReviewRepo) Create(_ context.Context, review *models.Review) error {
	r.nextID++
	review.ID = r.nextID
	copied := *review
	r.reviews = append(r.reviews, &copied)
	return nil
}

func (r *memReviewRepo) ListByStudentID(_ context.Context, studentID string) ([]*models.Review, error) {
	result := []*models.Review{}
	for _, rev := range r.reviews {
		if rev.StudentID == studentID {
			result = append(result, rev)
		}
	}
	return result, nil
}

func (r *memReviewRepo) ListByReviewerID(_ context.Context, reviewerID int64) ([]*models.Review, error) {
	result := []*models.Review{}
	for _, rev := range r.reviews {
		if rev.ReviewerID == reviewerID {
			result = append(result, rev)
		}
	}
	return result, nil
}

type seedFixture struct {
	seeder      *Seeder
	staffRepo   *memStaffRepo
	studentRepo *memStudentRepo
	reviewRepo  *memReviewRepo
}

func newSeedFixture() *seedFixture {
	staffRepo := &memStaffRepo{byID: make(map[int64]*models.Staff)}
	studentRepo := &memStudentRepo{byExt: make(map[string]*models.Student)}
	reviewRepo := &memReviewRepo{}

	staffSvc := services.NewStaffService(staffRepo, zerolog.Nop())
	studentSvc := services.NewStudentService(studentRepo, zerolog.Nop())
	reviewSvc := services.NewReviewService(reviewRepo, studentRepo, staffRepo, zerolog.Nop())

	return &seedFixture{
		seeder:      NewSeeder(staffSvc, studentSvc, reviewSvc, zerolog.Nop()),
		staffRepo:   staffRepo,
		studentRepo: studentRepo,
		reviewRepo:  reviewRepo,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreateDefaultStaffIsIdempotent(t *testing.T) {
	f := newSeedFixture()
	ctx := context.Background()

	require.NoError(t, f.seeder.CreateDefaultStaff(ctx))
	require.NoError(t, f.seeder.CreateDefaultStaff(ctx))

	assert.Len(t, f.staffRepo.byID, 2)

	admin, err := f.staffRepo.GetByEmail(ctx, "bob.bobberson@mail.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	regular, err := f.staffRepo.GetByEmail(ctx, "bobby.butterbread@mail.com")
	require.NoError(t, err)
	assert.False(t, regular.IsAdmin)
}

func TestImportStudents(t *testing.T) {
	f := newSeedFixture()
	ctx := context.Background()

	path := writeFile(t, "students.csv",
		"student_id;firstname;lastname;email\n"+
			"816000001;Jane;Doe;jane@my.uwi.edu\n"+
			"816000001;Jane;Doe;jane@my.uwi.edu\n"+ // duplicate, skipped
			"badid;Rick;Rickson;rick@my.uwi.edu\n"+ // invalid, skipped
			"816000002;Rick;Rickson;rick@my.uwi.edu\n")

	require.NoError(t, f.seeder.ImportStudents(ctx, path))
	assert.Len(t, f.studentRepo.byExt, 2)
}

func TestImportReviews(t *testing.T) {
	f := newSeedFixture()
	ctx := context.Background()

	require.NoError(t, f.seeder.CreateDefaultStaff(ctx))

	students := writeFile(t, "students.csv",
		"student_id;firstname;lastname;email\n"+
			"816000001;Jane;Doe;jane@my.uwi.edu\n")
	require.NoError(t, f.seeder.ImportStudents(ctx, students))

	reviews := writeFile(t, "reviews.csv",
		"text;rating;student_id;reviewer_id\n"+
			"Great work;5;816000001;1\n"+
			"Bad rating;nine;816000001;1\n"+ // unparsable rating, skipped
			"Unknown student;3;816999999;1\n"+ // missing student, skipped
			"Needs improvement;2;816000001;2\n")

	require.NoError(t, f.seeder.ImportReviews(ctx, reviews))
	require.Len(t, f.reviewRepo.reviews, 2)
	assert.Equal(t, "Great work", f.reviewRepo.reviews[0].Text)
	assert.Equal(t, int64(2), f.reviewRepo.reviews[1].ReviewerID)
}

func TestRunTwiceDoesNotDuplicateRows(t *testing.T) {
	f := newSeedFixture()
	ctx := context.Background()

	students := writeFile(t, "students.csv",
		"student_id;firstname;lastname;email\n"+
			"816000001;Jane;Doe;jane@my.uwi.edu\n"+
			"816000002;Rick;Rickson;rick@my.uwi.edu\n")
	reviews := writeFile(t, "reviews.csv",
		"text;rating;student_id;reviewer_id\n"+
			"Great work;5;816000001;1\n"+
			"Needs improvement;2;816000002;2\n")

	require.NoError(t, f.seeder.Run(ctx, students, reviews))
	require.NoError(t, f.seeder.Run(ctx, students, reviews))

	assert.Len(t, f.staffRepo.byID, 2)
	assert.Len(t, f.studentRepo.byExt, 2)
	assert.Len(t, f.reviewRepo.reviews, 2, "re-running the seed must not duplicate review rows")
}

func TestRunSkipsMissingFiles(t *testing.T) {
	f := newSeedFixture()

	err := f.seeder.Run(context.Background(), "does/not/exist.csv", "also/missing.csv")
	require.NoError(t, err)
	assert.Len(t, f.staffRepo.byID, 2, "bootstrap staff still created")
}
