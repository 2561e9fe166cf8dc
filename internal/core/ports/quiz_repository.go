package ports

import (
	"context"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

// QuizRepository defines persistence operations for quizzes.
type QuizRepository interface {
	Create(ctx context.Context, quiz *domain.Quiz) (*domain.Quiz, error)
	// FindByCreator returns quizzes whose created_by equals teacherID.
	FindByCreator(ctx context.Context, teacherID string) ([]*domain.Quiz, error)
}
