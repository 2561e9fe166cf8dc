package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// QuestionInput is one authored question in a quiz creation request.
type QuestionInput struct {
	Text          string
	Options       []string
	CorrectAnswer int
}

// CreateQuizInput carries the data needed to create a quiz.
type CreateQuizInput struct {
	Title     string
	Questions []QuestionInput
	TeacherID string
}

// QuizService defines quiz authoring use cases.
type QuizService interface {
	// CreateQuiz validates and persists a new quiz. Questions with empty
	// options or an out-of-range correct-answer index are rejected with
	// domain.ErrInvalidQuiz.
	CreateQuiz(ctx context.Context, input CreateQuizInput) (*domain.Quiz, error)
	MyQuizzes(ctx context.Context, teacherID string) ([]*domain.Quiz, error)
}
