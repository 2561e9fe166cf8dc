package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

// sampleProgress is the fixed dataset behind the student dashboard. Course
// completion tracking is not wired to the store; the dashboard renders this
// seeded set for every student.
var sampleProgress = []domain.CourseProgress{
	{
		CourseID:    "sample-react",
		CourseTitle: "Introduction to React",
		Description: "Learn the basics of React development",
		Progress:    75,
		Completed:   false,
		QuizScores:  []domain.QuizScore{{QuizID: "sample-quiz", Score: 85}},
	},
	{
		CourseID:    "sample-js",
		CourseTitle: "Advanced JavaScript",
		Description: "Master JavaScript concepts",
		Progress:    100,
		Completed:   true,
		QuizScores:  []domain.QuizScore{{QuizID: "sample-quiz", Score: 95}},
	},
}

// practiceQuiz is the fixed question set presented from the dashboard.
var practiceQuiz = domain.Quiz{
	ID:    "sample-quiz",
	Title: "React Fundamentals Quiz",
	Questions: []domain.Question{
		{
			Text: "What is React?",
			Options: []string{
				"A JavaScript library",
				"A programming language",
				"A database",
				"An operating system",
			},
			CorrectAnswer: 0,
		},
	},
}

// ProgressService serves the student dashboard from the seeded dataset.
type ProgressService struct {
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewProgressService(recorder ports.ActivityRecorder, logger zerolog.Logger) *ProgressService {
	return &ProgressService{recorder: recorder, logger: logger}
}

func (s *ProgressService) Dashboard(_ context.Context, studentID, studentName string) ([]domain.CourseProgress, error) {
	entries := make([]domain.CourseProgress, len(sampleProgress))
	copy(entries, sampleProgress)
	s.logger.Debug().Str("student_id", studentID).Str("name", studentName).Msg("dashboard served")
	return entries, nil
}

func (s *ProgressService) PracticeQuiz(_ context.Context) (*domain.Quiz, error) {
	quiz := practiceQuiz
	return &quiz, nil
}

// SubmitQuiz acknowledges the submission. Answers are neither scored nor
// written back to the store; only an audit event is recorded.
func (s *ProgressService) SubmitQuiz(_ context.Context, input ports.SubmitQuizInput) error {
	s.logger.Info().
		Str("student_id", input.StudentID).
		Str("quiz_id", input.QuizID).
		Int("answers", len(input.Answers)).
		Msg("quiz submitted")

	if s.recorder != nil {
		s.recorder.Enqueue(domain.ActivityEvent{
			CourseID:  input.QuizID,
			Kind:      domain.ActivityQuizSubmitted,
			ActorID:   input.StudentID,
			ActorName: input.Name,
			Timestamp: time.Now().UTC(),
		})
	}
	return nil
}
