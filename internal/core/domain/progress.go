package domain

// QuizScore records one quiz result inside a progress entry.
type QuizScore struct {
	QuizID string `json:"quiz_id"`
	Score  int    `json:"score"`
}

// CourseProgress is the student-dashboard view of one enrolled course.
// Completed courses unlock the certificate action; incomplete ones offer the
// practice quiz instead.
type CourseProgress struct {
	CourseID    string      `json:"course_id"`
	CourseTitle string      `json:"course_title"`
	Description string      `json:"description"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Progress    int         `json:"progress"`
	Completed   bool        `json:"completed"`
	QuizScores  []QuizScore `json:"quiz_scores"`
}
