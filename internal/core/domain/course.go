package domain

import (
	"errors"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrCourseNotFound = errors.New("course not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrMissingCourseFields = errors.New("title, description and video link are required")

// Course is a persisted record describing one course's metadata and ownership.
// CreatedBy holds the creating teacher's user id and gates edit/delete.
// Rating is a single stored value: the last submitted rating overwrites it
// unconditionally (no per-user history, no averaging).
type Course struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	VideoLink   string    `json:"video_link" bson:"video_link"`
	Thumbnail   string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Rating      int       `json:"rating" bson:"rating"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ValidRating reports whether n is an acceptable star rating.
func ValidRating(n int) bool {
	return n >= MinRating && n <= MaxRating
}
