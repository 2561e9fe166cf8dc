package domain

import (
	"errors"
	"fmt"
	"time"
)

// OptionsPerQuestion is fixed: every question carries exactly four options.
const OptionsPerQuestion = 4

var ErrInvalidQuiz = errors.New("invalid quiz")

// Question is a single multiple-choice question. CorrectAnswer is the index
// into Options of the right choice.
type Question struct {
	Text          string   `json:"text" bson:"text"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer int      `json:"correct_answer" bson:"correct_answer"`
}

// Validate checks the question's structural invariants: non-empty text,
// exactly four non-empty options, and a correct-answer index within range.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("%w: question text is required", ErrInvalidQuiz)
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuiz, OptionsPerQuestion, len(q.Options))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidQuiz, i+1)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: correct answer index %d out of range", ErrInvalidQuiz, q.CorrectAnswer)
	}
	return nil
}

// Quiz is a persisted question set authored by a teacher.
type Quiz struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Title     string     `json:"title" bson:"title"`
	Questions []Question `json:"questions" bson:"questions"`
	CreatedBy string     `json:"created_by" bson:"created_by"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}
