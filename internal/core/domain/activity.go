package domain

import "time"

// ActivityKind labels the action an ActivityEvent records.
type ActivityKind string

const (
	ActivityCourseRated       ActivityKind = "course.rated"
	ActivityQuizSubmitted     ActivityKind = "quiz.submitted"
	ActivityCertificateIssued ActivityKind = "certificate.issued"
)

// ActivityEvent is an audit record of a learner action on a course. Events
// are processed asynchronously and never block the action that emitted them.
type ActivityEvent struct {
	CourseID  string
	Kind      ActivityKind
	ActorID   string
	ActorName string
	// Detail carries a small, kind-specific payload (e.g. the submitted
	// star rating). Optional.
	Detail    map[string]any
	Timestamp time.Time
}
