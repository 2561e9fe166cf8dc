package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker filters duplicate activity events using Redis.
// Key format: activity:<course_id>:<kind>:<actor_id>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, event domain.ActivityEvent) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(event)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, event domain.ActivityEvent) error {
	return d.client.Set(ctx, d.key(event), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(event domain.ActivityEvent) string {
	return fmt.Sprintf("activity:%s:%s:%s:%d", event.CourseID, event.Kind, event.ActorID, event.Timestamp.Unix())
}
