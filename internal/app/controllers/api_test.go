package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadira/campusconduct/internal/app/controllers"
	"github.com/nadira/campusconduct/internal/app/models"
	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/routes"
	"github.com/nadira/campusconduct/internal/app/services"
	"github.com/nadira/campusconduct/internal/middleware"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
	"github.com/nadira/campusconduct/internal/pkg/auth"
)

// In-memory stores so the full HTTP stack runs without a database.

type memStaffStore struct {
	nextID int64
	byID   map[int64]*models.Staff
}

func (r *memStaffStore) Create(_ context.Context, staff *models.Staff) error {
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

func (r *memStaffStore) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStaffNotFound
}

func (r *memStaffStore) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	for _, s := range r.byID {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func (r *memStaffStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (r *memStaffStore) UpdateFirstName(_ context.Context, id int64, firstName string) error {
	s, ok := r.byID[id]
	if !ok {
		return apperrors.ErrStaffNotFound
	}
	s.FirstName = firstName
	return nil
}

type memStudentStore struct {
	nextID int64
	byExt  map[string]*models.Student
}

func (r *memStudentStore) Create(_ context.Context, student *models.Student) error {
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

func (r *memStudentStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	if s, ok := r.byExt[studentID]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *memStudentStore) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	_, ok := r.byExt[studentID]
	return ok, nil
}

func (r *memStudentStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, s := range r.byExt {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memReviewStore struct {
	nextID  int64
	reviews []*models.Review
}

func (r *memReviewStore) Create(_ context.Context, review *models.Review) error {
	r.nextID++
	review.ID = r.nextID
	copied := *review
	r.reviews = append(r.reviews, &copied)
	return nil
}

func (r *memReviewStore) ListByStudentID(_ context.Context, studentID string) ([]*models.Review, error) {
	result := []*models.Review{}
	for _, rev := range r.reviews {
		if rev.StudentID == studentID {
			result = append(result, rev)
		}
	}
	return result, nil
}

func (r *memReviewStore) ListByReviewerID(_ context.Context, reviewerID int64) ([]*models.Review, error) {
	result := []*models.Review{}
	for _, rev := range r.reviews {
		if rev.ReviewerID == reviewerID {
			result = append(result, rev)
		}
	}
	return result, nil
}

type apiFixture struct {
	router   *gin.Engine
	staffSvc services.StaffService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	staffStore := &memStaffStore{byID: make(map[int64]*models.Staff)}
	studentStore := &memStudentStore{byExt: make(map[string]*models.Student)}
	reviewStore := &memReviewStore{}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusconduct.test",
	})

	lgr := zerolog.Nop()
	authSvc := services.NewAuthService(staffStore, jwtService, lgr)
	staffSvc := services.NewStaffService(staffStore, lgr)
	studentSvc := services.NewStudentService(studentStore, lgr)
	reviewSvc := services.NewReviewService(reviewStore, studentStore, staffStore, lgr)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(authSvc, lgr),
		controllers.NewStaffController(staffSvc, reviewSvc, lgr),
		controllers.NewStudentController(studentSvc, lgr),
		controllers.NewReviewController(reviewSvc, lgr),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &apiFixture{router: router, staffSvc: staffSvc}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// Creates a staff member directly through the bootstrap path and returns
// a login token for them.
func (f *apiFixture) loginAs(t *testing.T, email string, isAdmin bool) string {
	t.Helper()
	_, err := f.staffSvc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Prefix: "Mr.", FirstName: "Test", LastName: "Staff",
		Email: email, IsAdmin: isAdmin, Password: "secret123",
	}, nil)
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	token := f.loginAs(t, "bob@mail.com", true)
	assert.NotEmpty(t, token)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "bob@mail.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bad email or password given")
}

func TestCreateStaffEndpointRequiresAdmin(t *testing.T) {
	f := newAPIFixture(t)
	body := dto.CreateStaffRequest{
		Prefix: "Ms.", FirstName: "New", LastName: "Hire",
		Email: "new.hire@mail.com", Password: "hirepass",
	}

	// No token at all.
	rec := f.do(t, http.MethodPost, "/api/v1/staff", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Regular staff token.
	regularToken := f.loginAs(t, "regular@mail.com", false)
	rec = f.do(t, http.MethodPost, "/api/v1/staff", regularToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin token succeeds.
	adminToken := f.loginAs(t, "admin@mail.com", true)
	rec = f.do(t, http.MethodPost, "/api/v1/staff", adminToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate email renders the generic conflict message.
	rec = f.do(t, http.MethodPost, "/api/v1/staff", adminToken, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to create record")
}

func TestStudentAndReviewEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	token := f.loginAs(t, "bob@mail.com", true)

	rec := f.do(t, http.MethodPost, "/api/v1/students", "", dto.AddStudentRequest{
		StudentID: "816000001", FirstName: "Jane", LastName: "Doe",
		Email: "jane@my.uwi.edu",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/students/816000001", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane")

	rec = f.do(t, http.MethodGet, "/api/v1/students/816999999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Authoring a review requires a token.
	review := dto.AddReviewRequest{Text: "Great participation", Rating: 5}
	rec = f.do(t, http.MethodPost, "/api/v1/students/816000001/reviews", "", review)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/students/816000001/reviews", token, review)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Reading reviews is public and joins the reviewer's display name.
	rec = f.do(t, http.MethodGet, "/api/v1/students/816000001/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mr. Test Staff")

	// Out-of-range rating is rejected by the service.
	rec = f.do(t, http.MethodPost, "/api/v1/students/816000001/reviews", token,
		map[string]interface{}{"text": "Bad rating", "rating": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaffReviewsAndRenameEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	token := f.loginAs(t, "admin@mail.com", true)

	rec := f.do(t, http.MethodPost, "/api/v1/students", "", dto.AddStudentRequest{
		StudentID: "816000001", FirstName: "Jane", LastName: "Doe",
		Email: "jane@my.uwi.edu",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/students/816000001/reviews", token,
		dto.AddReviewRequest{Text: "Solid work", Rating: 4})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Staff ID 1 is the admin created by loginAs.
	rec = f.do(t, http.MethodGet, "/api/v1/staff/1/reviews", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Solid work")

	// Rename and confirm the reviewer name changes on the existing review.
	rec = f.do(t, http.MethodPatch, "/api/v1/staff/1", token,
		dto.RenameStaffRequest{FirstName: "Robert"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/students/816000001/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mr. Robert Staff")
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
