package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// CreateCourseInput carries the data needed to create a course.
type CreateCourseInput struct {
	Title       string
	Description string
	VideoLink   string
	Thumbnail   string
	// TeacherID is the acting teacher's identity id, taken from the session
	// claims, never from the request body.
	TeacherID string
}

// UpdateCourseInput carries a full replacement of the editable fields.
type UpdateCourseInput struct {
	CourseID    string
	Title       string
	Description string
	VideoLink   string
	TeacherID   string
}

// RateCourseInput carries a star rating submission from any viewer.
type RateCourseInput struct {
	CourseID  string
	Rating    int
	ActorID   string
	ActorName string
}

// CourseService defines the catalog and teacher-management use cases.
type CourseService interface {
	ListCourses(ctx context.Context) ([]*domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	// RateCourse overwrites the course rating and returns the updated course.
	RateCourse(ctx context.Context, input RateCourseInput) (*domain.Course, error)

	CreateCourse(ctx context.Context, input CreateCourseInput) (*domain.Course, error)
	// MyCourses lists the courses created by the acting teacher.
	MyCourses(ctx context.Context, teacherID string) ([]*domain.Course, error)
	// UpdateCourse saves an edited course. Only the creator may update.
	UpdateCourse(ctx context.Context, input UpdateCourseInput) (*domain.Course, error)
	// DeleteCourse removes a course by id. Only the creator may delete.
	DeleteCourse(ctx context.Context, courseID, teacherID string) error
}
