package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// CourseUpdate holds the three editable fields of a course. All three are
// always re-sent on save and overwrite the stored values.
type CourseUpdate struct {
	Title       string
	Description string
	VideoLink   string
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// FindAll returns every course document; the catalog has no pagination.
	FindAll(ctx context.Context) ([]*domain.Course, error)
	// FindByCreator returns courses whose created_by equals teacherID.
	FindByCreator(ctx context.Context, teacherID string) ([]*domain.Course, error)
	// Update overwrites the editable fields of the course with the given id.
	Update(ctx context.Context, id string, update CourseUpdate) error
	Delete(ctx context.Context, id string) error
	// SetRating unconditionally overwrites the stored rating (last write wins).
	SetRating(ctx context.Context, id string, rating int) error
}
