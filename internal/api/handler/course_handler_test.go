package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

type stubCourseService struct {
	listFn   func(ctx context.Context) ([]*domain.Course, error)
	getFn    func(ctx context.Context, id string) (*domain.Course, error)
	rateFn   func(ctx context.Context, input ports.RateCourseInput) (*domain.Course, error)
	createFn func(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error)
	mineFn   func(ctx context.Context, teacherID string) ([]*domain.Course, error)
	updateFn func(ctx context.Context, input ports.UpdateCourseInput) (*domain.Course, error)
	deleteFn func(ctx context.Context, courseID, teacherID string) error
}

func (s *stubCourseService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return s.listFn(ctx)
}

func (s *stubCourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) RateCourse(ctx context.Context, input ports.RateCourseInput) (*domain.Course, error) {
	return s.rateFn(ctx, input)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	return s.createFn(ctx, input)
}

func (s *stubCourseService) MyCourses(ctx context.Context, teacherID string) ([]*domain.Course, error) {
	return s.mineFn(ctx, teacherID)
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, input ports.UpdateCourseInput) (*domain.Course, error) {
	return s.updateFn(ctx, input)
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, courseID, teacherID string) error {
	return s.deleteFn(ctx, courseID, teacherID)
}

// setIdentity simulates the Auth middleware having validated a session.
func setIdentity(c echo.Context, userID, name, role string) {
	c.Set("user_id", userID)
	c.Set("name", name)
	c.Set("role", role)
}

func sampleCourse() *domain.Course {
	return &domain.Course{
		ID:          "course_1",
		Title:       "Intro to Go",
		Description: "Learn the basics",
		VideoLink:   "https://videos.example.com/go",
		Rating:      4,
		CreatedBy:   "teacher_1",
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCourseHandler_List(t *testing.T) {
	stub := &stubCourseService{
		listFn: func(_ context.Context) ([]*domain.Course, error) {
			return []*domain.Course{sampleCourse()}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/courses", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listCoursesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Data[0].ID != "course_1" || resp.Data[0].Rating != 4 {
		t.Fatalf("unexpected course: %+v", resp.Data[0])
	}
}

func TestCourseHandler_List_Empty(t *testing.T) {
	stub := &stubCourseService{
		listFn: func(_ context.Context) ([]*domain.Course, error) { return nil, nil },
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/courses", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// An empty catalog still serialises data as [] rather than null.
	var resp struct {
		Data  []courseResponse `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data == nil {
		t.Error("expected data to be an empty array")
	}
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	stub := &stubCourseService{
		getFn: func(_ context.Context, _ string) (*domain.Course, error) {
			return nil, domain.ErrCourseNotFound
		},
	}
	handler := NewCourseHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v1/courses/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseHandler_Rate_Success(t *testing.T) {
	stub := &stubCourseService{
		rateFn: func(_ context.Context, input ports.RateCourseInput) (*domain.Course, error) {
			if input.CourseID != "course_1" || input.Rating != 5 || input.ActorID != "student_1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			course := sampleCourse()
			course.Rating = input.Rating
			return course, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/courses/course_1/rating", `{"rating":5}`)
	c.SetParamNames("id")
	c.SetParamValues("course_1")
	setIdentity(c, "student_1", "Bob", domain.RoleStudent)

	if err := handler.Rate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp courseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Rating != 5 {
		t.Fatalf("expected updated rating 5, got %d", resp.Rating)
	}
}

func TestCourseHandler_Rate_OutOfRange(t *testing.T) {
	stub := &stubCourseService{
		rateFn: func(_ context.Context, _ ports.RateCourseInput) (*domain.Course, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewCourseHandler(stub)

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{"rating":-1}`} {
		c, _ := newTestContext(t, http.MethodPost, "/v1/courses/course_1/rating", body)
		c.SetParamNames("id")
		c.SetParamValues("course_1")
		setIdentity(c, "student_1", "Bob", domain.RoleStudent)

		if code := httpCode(t, handler.Rate(c)); code != http.StatusBadRequest {
			t.Errorf("body=%s: expected 400, got %d", body, code)
		}
	}
}

func TestCourseHandler_Rate_NoIdentity(t *testing.T) {
	stub := &stubCourseService{
		rateFn: func(_ context.Context, _ ports.RateCourseInput) (*domain.Course, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/courses/course_1/rating", `{"rating":3}`)
	c.SetParamNames("id")
	c.SetParamValues("course_1")

	if code := httpCode(t, handler.Rate(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session claims, got %d", code)
	}
}

func TestCourseHandler_Create_Success(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(_ context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
			// TeacherID must come from the session, never the body.
			if input.TeacherID != "teacher_1" {
				t.Fatalf("expected teacher_1 from claims, got %q", input.TeacherID)
			}
			course := sampleCourse()
			course.Title = input.Title
			return course, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/courses",
		`{"title":"Intro to Go","description":"Learn","video_link":"https://v","created_by":"spoofed"}`)
	setIdentity(c, "teacher_1", "Tina", domain.RoleTeacher)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCourseHandler_Create_MissingField(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(_ context.Context, _ ports.CreateCourseInput) (*domain.Course, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/courses", `{"title":"Only title"}`)
	setIdentity(c, "teacher_1", "Tina", domain.RoleTeacher)

	if code := httpCode(t, handler.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestCourseHandler_Mine_UsesClaimsIdentity(t *testing.T) {
	var gotTeacher string
	stub := &stubCourseService{
		mineFn: func(_ context.Context, teacherID string) ([]*domain.Course, error) {
			gotTeacher = teacherID
			return []*domain.Course{sampleCourse()}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/teacher/courses", "")
	setIdentity(c, "teacher_1", "Tina", domain.RoleTeacher)

	if err := handler.Mine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotTeacher != "teacher_1" {
		t.Fatalf("expected teacher_1, got %q", gotTeacher)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCourseHandler_Update_Forbidden(t *testing.T) {
	stub := &stubCourseService{
		updateFn: func(_ context.Context, _ ports.UpdateCourseInput) (*domain.Course, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewCourseHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/v1/courses/course_1",
		`{"title":"T","description":"D","video_link":"https://v"}`)
	c.SetParamNames("id")
	c.SetParamValues("course_1")
	setIdentity(c, "teacher_2", "Other", domain.RoleTeacher)

	if err := handler.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCourseHandler_Delete_Success(t *testing.T) {
	var gotCourse, gotTeacher string
	stub := &stubCourseService{
		deleteFn: func(_ context.Context, courseID, teacherID string) error {
			gotCourse, gotTeacher = courseID, teacherID
			return nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/courses/course_1", "")
	c.SetParamNames("id")
	c.SetParamValues("course_1")
	setIdentity(c, "teacher_1", "Tina", domain.RoleTeacher)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotCourse != "course_1" || gotTeacher != "teacher_1" {
		t.Fatalf("unexpected args: %s %s", gotCourse, gotTeacher)
	}
}
