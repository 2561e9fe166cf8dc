package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// ActivityService processes learner activity events off the request path.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRecorder is the producer-side interface services use to hand an
// event to the background pipeline. Enqueueing never blocks the caller beyond
// the dispatcher's channel buffer and never fails the triggering request.
type ActivityRecorder interface {
	Enqueue(event domain.ActivityEvent)
}
