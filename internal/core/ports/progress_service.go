package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// QuizAnswerInput is one answered question in a practice quiz submission:
// the zero-based index of the chosen option per question.
type QuizAnswerInput struct {
	QuestionIndex int
	Answer        int
}

// SubmitQuizInput carries a practice quiz submission from a student.
type SubmitQuizInput struct {
	QuizID    string
	Answers   []QuizAnswerInput
	StudentID string
	Name      string
}

// ProgressService serves the student dashboard: per-course progress, the
// practice quiz, and quiz submissions. Submissions are acknowledged but not
// scored or persisted.
type ProgressService interface {
	// Dashboard returns the student's course progress entries.
	Dashboard(ctx context.Context, studentID, studentName string) ([]domain.CourseProgress, error)
	// PracticeQuiz returns the quiz presented from the dashboard.
	PracticeQuiz(ctx context.Context) (*domain.Quiz, error)
	// SubmitQuiz acknowledges a submission without scoring it.
	SubmitQuiz(ctx context.Context, input SubmitQuizInput) error
}
