package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartlms/elearning-system/internal/api/metrics"
	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

// CatalogCache abstracts the Redis-backed course list cache. A miss is
// reported as (nil, nil); errors are logged and treated as misses.
type CatalogCache interface {
	Get(ctx context.Context) ([]*domain.Course, error)
	Set(ctx context.Context, courses []*domain.Course) error
	Invalidate(ctx context.Context) error
}

// CourseService implements the catalog and teacher-management use cases.
type CourseService struct {
	repo     ports.CourseRepository
	cache    CatalogCache
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache CatalogCache, recorder ports.ActivityRecorder, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, recorder: recorder, logger: logger}
}

// ListCourses returns the full catalog, served from cache when fresh.
func (s *CourseService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
		} else if cached != nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list courses")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, courses); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return courses, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

// RateCourse overwrites the stored rating with the submitted value. The last
// submitter wins; there is no per-user history and no averaging.
func (s *CourseService) RateCourse(ctx context.Context, input ports.RateCourseInput) (*domain.Course, error) {
	if !domain.ValidRating(input.Rating) {
		return nil, domain.ErrInvalidRating
	}

	course, err := s.repo.FindByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetRating(ctx, course.ID, input.Rating); err != nil {
		s.logger.Error().Err(err).Str("course_id", course.ID).Msg("failed to set rating")
		return nil, err
	}
	s.invalidateCatalog(ctx)

	// Store write confirmed; now update the returned view.
	course.Rating = input.Rating

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(input.Rating)).Inc()
	s.record(domain.ActivityEvent{
		CourseID:  course.ID,
		Kind:      domain.ActivityCourseRated,
		ActorID:   input.ActorID,
		ActorName: input.ActorName,
		Detail:    map[string]any{"rating": input.Rating},
		Timestamp: time.Now().UTC(),
	})

	return course, nil
}

// CreateCourse validates all three required fields before touching the store.
func (s *CourseService) CreateCourse(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	if input.Title == "" || input.Description == "" || input.VideoLink == "" {
		return nil, domain.ErrMissingCourseFields
	}

	course := &domain.Course{
		Title:       input.Title,
		Description: input.Description,
		VideoLink:   input.VideoLink,
		Thumbnail:   input.Thumbnail,
		CreatedBy:   input.TeacherID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, course)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create course")
		return nil, err
	}
	s.invalidateCatalog(ctx)

	metrics.CoursesCreatedTotal.Inc()
	s.logger.Info().Str("course_id", created.ID).Str("teacher_id", input.TeacherID).Msg("course created")
	return created, nil
}

func (s *CourseService) MyCourses(ctx context.Context, teacherID string) ([]*domain.Course, error) {
	return s.repo.FindByCreator(ctx, teacherID)
}

// UpdateCourse overwrites the three editable fields. Untouched values must be
// re-sent by the caller and therefore round-trip verbatim.
func (s *CourseService) UpdateCourse(ctx context.Context, input ports.UpdateCourseInput) (*domain.Course, error) {
	if input.Title == "" || input.Description == "" || input.VideoLink == "" {
		return nil, domain.ErrMissingCourseFields
	}

	course, err := s.repo.FindByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}
	if course.CreatedBy != input.TeacherID {
		return nil, domain.ErrForbidden
	}

	update := ports.CourseUpdate{
		Title:       input.Title,
		Description: input.Description,
		VideoLink:   input.VideoLink,
	}
	if err := s.repo.Update(ctx, course.ID, update); err != nil {
		s.logger.Error().Err(err).Str("course_id", course.ID).Msg("failed to update course")
		return nil, err
	}
	s.invalidateCatalog(ctx)

	// Re-read after the write completes so the caller sees the stored state.
	return s.repo.FindByID(ctx, course.ID)
}

// DeleteCourse removes the course after the store confirms the ownership
// check. Callers drop the entry from their local list only after this
// returns nil.
func (s *CourseService) DeleteCourse(ctx context.Context, courseID, teacherID string) error {
	course, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course.CreatedBy != teacherID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, courseID); err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("failed to delete course")
		return err
	}
	s.invalidateCatalog(ctx)

	metrics.CoursesDeletedTotal.Inc()
	s.logger.Info().Str("course_id", courseID).Str("teacher_id", teacherID).Msg("course deleted")
	return nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func (s *CourseService) record(event domain.ActivityEvent) {
	if s.recorder != nil {
		s.recorder.Enqueue(event)
	}
}
