package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartlms/elearning-system/internal/api/metrics"
	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

// DedupChecker abstracts the Redis-backed duplicate filter. Rapid repeated
// clicks on ungated controls can emit the same event more than once; the
// filter collapses those into a single audit row.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, event domain.ActivityEvent) (bool, error)
	Mark(ctx context.Context, event domain.ActivityEvent) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single activity event. Failures are
// reported to the caller for logging but never reach the user: the request
// that emitted the event has already completed.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, event)
	if err != nil {
		s.log.Warn().Err(err).Str("course_id", event.CourseID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.ActivityDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("course_id", event.CourseID).Str("kind", string(event.Kind)).Msg("duplicate activity skipped")
		return nil
	} else {
		metrics.ActivityDedupTotal.WithLabelValues("miss").Inc()
	}

	// Mark before writing so a crash-retry does not double-insert.
	if markErr := s.dedup.Mark(ctx, event); markErr != nil {
		s.log.Warn().Err(markErr).Str("course_id", event.CourseID).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process activity: %w", err)
	}

	metrics.ActivityProcessedTotal.WithLabelValues(string(event.Kind)).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(string(event.Kind)).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("course_id", event.CourseID).
		Str("kind", string(event.Kind)).
		Str("actor_id", event.ActorID).
		Msg("activity recorded")

	return nil
}
