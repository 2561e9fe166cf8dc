package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

type stubActivityRepo struct {
	inserted  []domain.ActivityEvent
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *event)
	return nil
}

type stubDedup struct {
	duplicate bool
	checkErr  error
	marked    []domain.ActivityEvent
}

func (d *stubDedup) IsDuplicate(_ context.Context, event domain.ActivityEvent) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.duplicate, nil
}

func (d *stubDedup) Mark(_ context.Context, event domain.ActivityEvent) error {
	d.marked = append(d.marked, event)
	return nil
}

func sampleEvent() domain.ActivityEvent {
	return domain.ActivityEvent{
		CourseID:  "course_1",
		Kind:      domain.ActivityCourseRated,
		ActorID:   "student_1",
		ActorName: "Bob",
		Detail:    map[string]any{"rating": 5},
		Timestamp: time.Now().UTC(),
	}
}

func TestActivityService_Process_InsertsEvent(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{}
	svc := NewActivityService(repo, dedup, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	if len(dedup.marked) != 1 {
		t.Fatalf("expected dedup key to be set, got %d marks", len(dedup.marked))
	}
	if repo.inserted[0].Kind != domain.ActivityCourseRated {
		t.Errorf("unexpected kind: %q", repo.inserted[0].Kind)
	}
}

func TestActivityService_Process_SkipsDuplicate(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{duplicate: true}
	svc := NewActivityService(repo, dedup, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("duplicates are dropped silently, got error: %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("duplicate must not be inserted, got %d", len(repo.inserted))
	}
	if len(dedup.marked) != 0 {
		t.Fatalf("duplicate must not be re-marked, got %d", len(dedup.marked))
	}
}

func TestActivityService_Process_DedupErrorProcessesAnyway(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{checkErr: errors.New("redis down")}
	svc := NewActivityService(repo, dedup, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("dedup failure must not block processing: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert despite dedup error, got %d", len(repo.inserted))
	}
}

func TestActivityService_Process_InsertError(t *testing.T) {
	repo := &stubActivityRepo{insertErr: errors.New("db unavailable")}
	dedup := &stubDedup{}
	svc := NewActivityService(repo, dedup, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err == nil {
		t.Fatal("expected error when insert fails, got nil")
	}
}
