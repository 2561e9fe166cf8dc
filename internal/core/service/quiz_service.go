package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

// QuizService implements quiz authoring.
type QuizService struct {
	repo   ports.QuizRepository
	logger zerolog.Logger
}

func NewQuizService(repo ports.QuizRepository, logger zerolog.Logger) *QuizService {
	return &QuizService{repo: repo, logger: logger}
}

// CreateQuiz validates the full question list before persisting anything.
// Empty options and out-of-range correct-answer indices are rejected rather
// than stored.
func (s *QuizService) CreateQuiz(ctx context.Context, input ports.CreateQuizInput) (*domain.Quiz, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidQuiz)
	}
	if len(input.Questions) == 0 {
		return nil, fmt.Errorf("%w: at least one question is required", domain.ErrInvalidQuiz)
	}

	questions := make([]domain.Question, 0, len(input.Questions))
	for i, q := range input.Questions {
		question := domain.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, question)
	}

	quiz := &domain.Quiz{
		Title:     input.Title,
		Questions: questions,
		CreatedBy: input.TeacherID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, quiz)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create quiz")
		return nil, err
	}

	s.logger.Info().Str("quiz_id", created.ID).Str("teacher_id", input.TeacherID).Int("questions", len(questions)).Msg("quiz created")
	return created, nil
}

func (s *QuizService) MyQuizzes(ctx context.Context, teacherID string) ([]*domain.Quiz, error) {
	return s.repo.FindByCreator(ctx, teacherID)
}
