package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createCourseRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	VideoLink   string `json:"video_link"  validate:"required"`
	Thumbnail   string `json:"thumbnail"`
}

// updateCourseRequest always carries all three editable fields; untouched
// values are re-sent verbatim by the client.
type updateCourseRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	VideoLink   string `json:"video_link"  validate:"required"`
}

type rateCourseRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type courseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoLink   string    `json:"video_link"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Rating      int       `json:"rating"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type listCoursesResponse struct {
	Data  []courseResponse `json:"data"`
	Total int              `json:"total"`
}
