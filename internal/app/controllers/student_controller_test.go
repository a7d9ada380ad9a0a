package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classware/studentms/internal/app/controllers"
	"github.com/classware/studentms/internal/app/models"
	"github.com/classware/studentms/internal/app/models/dto"
	"github.com/classware/studentms/internal/app/routes"
	"github.com/classware/studentms/internal/config"
	"github.com/classware/studentms/internal/pkg/apperrors"
)

// stubStudentService is a hand-rolled stub: each field, when set, answers the
// corresponding call. Calls record themselves so tests can assert a handler
// short-circuited before reaching the service.
type stubStudentService struct {
	calls []string

	getAllFn   func(ctx context.Context) ([]*models.Student, error)
	getActive  func(ctx context.Context) ([]*models.Student, error)
	getByID    func(ctx context.Context, id int64) (*models.Student, error)
	create     func(ctx context.Context, student *models.Student) (*models.Student, error)
	update     func(ctx context.Context, id int64, data *models.Student) (*models.Student, error)
	deleteFn   func(ctx context.Context, id int64) error
	transition func(ctx context.Context, id int64) (*models.Student, error)
}

func (s *stubStudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	s.calls = append(s.calls, "GetAllStudents")
	return s.getAllFn(ctx)
}

func (s *stubStudentService) GetActiveStudents(ctx context.Context) ([]*models.Student, error) {
	s.calls = append(s.calls, "GetActiveStudents")
	return s.getActive(ctx)
}

func (s *stubStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	s.calls = append(s.calls, "GetStudentByID")
	return s.getByID(ctx, id)
}

func (s *stubStudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	s.calls = append(s.calls, "CreateStudent")
	return s.create(ctx, student)
}

func (s *stubStudentService) UpdateStudent(ctx context.Context, id int64, data *models.Student) (*models.Student, error) {
	s.calls = append(s.calls, "UpdateStudent")
	return s.update(ctx, id, data)
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, id int64) error {
	s.calls = append(s.calls, "DeleteStudent")
	return s.deleteFn(ctx, id)
}

func (s *stubStudentService) SuspendStudent(ctx context.Context, id int64) (*models.Student, error) {
	s.calls = append(s.calls, "SuspendStudent")
	return s.transition(ctx, id)
}

func (s *stubStudentService) ActivateStudent(ctx context.Context, id int64) (*models.Student, error) {
	s.calls = append(s.calls, "ActivateStudent")
	return s.transition(ctx, id)
}

func (s *stubStudentService) GraduateStudent(ctx context.Context, id int64) (*models.Student, error) {
	s.calls = append(s.calls, "GraduateStudent")
	return s.transition(ctx, id)
}

func newTestRouter(svc *stubStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{}
	cfg.App.Name = "Student Management API"
	cfg.App.Description = "CRUD API for managing student records"
	cfg.App.Version = "1.0.0"

	routes.SetupRouter(router, controllers.NewStudentController(svc), controllers.NewHealthController(cfg))
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleStudent(id int64, status models.StudentStatus) *models.Student {
	return &models.Student{
		ID:             id,
		Name:           "John Doe",
		PassportNumber: "A1234567",
		Age:            25,
		EnrollmentDate: time.Date(2023, 9, 1, 9, 0, 0, 0, time.UTC),
		Status:         status,
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestCreateStudentReturns201WithLocation(t *testing.T) {
	svc := &stubStudentService{
		create: func(_ context.Context, student *models.Student) (*models.Student, error) {
			student.ID = 42
			student.Status = models.StatusActive
			return student, nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPost, "/api/v1/students",
		`{"name":"John Doe","passportNumber":"A1234567","age":25}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/api/v1/students/42" {
		t.Errorf("Location = %q", loc)
	}

	var student models.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &student); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if student.ID != 42 || student.Status != models.StatusActive {
		t.Errorf("body = %+v", student)
	}
}

func TestCreateStudentValidationFailure(t *testing.T) {
	svc := &stubStudentService{}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPost, "/api/v1/students",
		`{"name":"J","passportNumber":"bogus","age":12}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(svc.calls) != 0 {
		t.Errorf("service should not be invoked on validation failure, got calls %v", svc.calls)
	}

	body := decodeError(t, rec)
	if body.Error != "Validation Failed" || body.Message != "Invalid input data" {
		t.Errorf("error body = %+v", body)
	}
	if body.Path != "/api/v1/students" {
		t.Errorf("path = %q", body.Path)
	}
	if len(body.Details) < 3 {
		t.Errorf("expected violation details, got %v", body.Details)
	}
}

func TestCreateStudentMalformedJSON(t *testing.T) {
	svc := &stubStudentService{}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPost, "/api/v1/students", `{"name":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(svc.calls) != 0 {
		t.Errorf("service should not be invoked, got calls %v", svc.calls)
	}
}

func TestCreateStudentUnknownStatusRejected(t *testing.T) {
	svc := &stubStudentService{}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPost, "/api/v1/students",
		`{"name":"John Doe","passportNumber":"A1234567","age":25,"status":"EXPELLED"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(svc.calls) != 0 {
		t.Errorf("service should not be invoked, got calls %v", svc.calls)
	}
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := &stubStudentService{
		getByID: func(_ context.Context, id int64) (*models.Student, error) {
			return nil, apperrors.NewStudentNotFoundError(id)
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodGet, "/api/v1/students/999", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	body := decodeError(t, rec)
	if body.Error != "Not Found" {
		t.Errorf("error = %q", body.Error)
	}
	if body.Message != "Student not found with id: 999" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestGetStudentByIDNonPositive(t *testing.T) {
	svc := &stubStudentService{}
	router := newTestRouter(svc)

	for _, path := range []string{"/api/v1/students/-5", "/api/v1/students/0"} {
		rec := perform(router, http.MethodGet, path, "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", path, rec.Code)
		}

		body := decodeError(t, rec)
		if body.Message != "Student ID must be a positive number" {
			t.Errorf("%s: message = %q", path, body.Message)
		}
		if body.Error != "Bad Request" {
			t.Errorf("%s: error = %q", path, body.Error)
		}
	}

	if len(svc.calls) != 0 {
		t.Errorf("service should not be invoked for non-positive ids, got calls %v", svc.calls)
	}
}

func TestGetStudentByIDNonNumeric(t *testing.T) {
	svc := &stubStudentService{}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodGet, "/api/v1/students/abc", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(svc.calls) != 0 {
		t.Errorf("service should not be invoked, got calls %v", svc.calls)
	}
}

func TestGetActiveStudents(t *testing.T) {
	svc := &stubStudentService{
		getActive: func(context.Context) ([]*models.Student, error) {
			return []*models.Student{sampleStudent(1, models.StatusActive)}, nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodGet, "/api/v1/students/active", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var students []*models.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &students); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(students) != 1 || students[0].Status != models.StatusActive {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDeleteStudentReturns204(t *testing.T) {
	svc := &stubStudentService{
		deleteFn: func(context.Context, int64) error { return nil },
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodDelete, "/api/v1/students/7", "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestSuspendStudentReturnsUpdatedRecord(t *testing.T) {
	svc := &stubStudentService{
		transition: func(_ context.Context, id int64) (*models.Student, error) {
			return sampleStudent(id, models.StatusSuspended), nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPut, "/api/v1/students/3/suspend", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var student models.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &student); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if student.Status != models.StatusSuspended {
		t.Errorf("status = %s", student.Status)
	}
	if got := svc.calls; len(got) != 1 || got[0] != "SuspendStudent" {
		t.Errorf("calls = %v", got)
	}
}

func TestTransitionNonPositiveIDReachesService(t *testing.T) {
	// The transition endpoints only reject ids that fail to parse; a
	// non-positive id flows through and comes back as a not-found.
	svc := &stubStudentService{
		transition: func(_ context.Context, id int64) (*models.Student, error) {
			return nil, apperrors.NewStudentNotFoundError(id)
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPut, "/api/v1/students/-5/graduate", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := svc.calls; len(got) != 1 || got[0] != "GraduateStudent" {
		t.Errorf("calls = %v", got)
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc := &stubStudentService{
		update: func(_ context.Context, id int64, _ *models.Student) (*models.Student, error) {
			return nil, apperrors.NewStudentNotFoundError(id)
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPut, "/api/v1/students/5",
		`{"name":"Jane Doe","passportNumber":"B7654321","age":30}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := decodeError(t, rec)
	if body.Message != "Student not found with id: 5" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestUniquenessConflictSurfacesAsInternalError(t *testing.T) {
	svc := &stubStudentService{
		create: func(context.Context, *models.Student) (*models.Student, error) {
			return nil, apperrors.ErrPassportNumberExists
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPost, "/api/v1/students",
		`{"name":"John Doe","passportNumber":"A1234567","age":25}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := decodeError(t, rec)
	if body.Error != "Internal Server Error" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubStudentService{})

	rec := perform(router, http.MethodGet, "/api/v1/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "UP" {
		t.Errorf("status = %v", body["status"])
	}
	if body["service"] != "Student Management API" {
		t.Errorf("service = %v", body["service"])
	}
}

func TestInfoEndpoint(t *testing.T) {
	router := newTestRouter(&stubStudentService{})

	rec := perform(router, http.MethodGet, "/api/v1/info", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["swagger-ui"] != "/swagger/index.html" {
		t.Errorf("swagger-ui = %v", body["swagger-ui"])
	}
	if body["version"] != "1.0.0" {
		t.Errorf("version = %v", body["version"])
	}
}
