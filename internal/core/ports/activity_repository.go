package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// ActivityRepository persists learner activity events to the audit collection.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}
