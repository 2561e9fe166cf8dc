package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartlms/elearning-system/internal/core/domain"
)

const quizzesCollection = "quizzes"

// QuizRepository implements ports.QuizRepository backed by the quizzes collection.
type QuizRepository struct {
	coll *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{coll: db.Collection(quizzesCollection)}
}

type mongoQuestion struct {
	Text          string   `bson:"text"`
	Options       []string `bson:"options"`
	CorrectAnswer int      `bson:"correct_answer"`
}

type mongoQuiz struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Questions []mongoQuestion    `bson:"questions"`
	CreatedBy string             `bson:"created_by"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mq mongoQuiz) toDomain() *domain.Quiz {
	questions := make([]domain.Question, 0, len(mq.Questions))
	for _, q := range mq.Questions {
		questions = append(questions, domain.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &domain.Quiz{
		ID:        mq.ID.Hex(),
		Title:     mq.Title,
		Questions: questions,
		CreatedBy: mq.CreatedBy,
		CreatedAt: mq.CreatedAt.UTC(),
	}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *domain.Quiz) (*domain.Quiz, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	questions := make([]mongoQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, mongoQuestion{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	doc := mongoQuiz{
		Title:     quiz.Title,
		Questions: questions,
		CreatedBy: quiz.CreatedBy,
		CreatedAt: quiz.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert quiz: %w", err)
	}

	created := *quiz
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *QuizRepository) FindByCreator(ctx context.Context, teacherID string) ([]*domain.Quiz, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"created_by": teacherID})
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer cursor.Close(ctx)

	quizzes := make([]*domain.Quiz, 0)
	for cursor.Next(ctx) {
		var mq mongoQuiz
		if err := cursor.Decode(&mq); err != nil {
			return nil, fmt.Errorf("decode quiz: %w", err)
		}
		quizzes = append(quizzes, mq.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	return quizzes, nil
}
