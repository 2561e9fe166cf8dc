package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

// QuizHandler handles quiz authoring (teacher only).
type QuizHandler struct {
	service ports.QuizService
}

func NewQuizHandler(service ports.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

type questionRequest struct {
	Text          string   `json:"text"           validate:"required"`
	Options       []string `json:"options"        validate:"required,len=4,dive,required"`
	CorrectAnswer int      `json:"correct_answer" validate:"min=0,max=3"`
}

type createQuizRequest struct {
	Title     string            `json:"title"     validate:"required"`
	Questions []questionRequest `json:"questions" validate:"required,min=1,dive"`
}

type questionResponse struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

type quizResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Questions []questionResponse `json:"questions"`
	CreatedBy string             `json:"created_by"`
	CreatedAt time.Time          `json:"created_at"`
}

type listQuizzesResponse struct {
	Data  []quizResponse `json:"data"`
	Total int            `json:"total"`
}

func toQuizResponse(q *domain.Quiz) quizResponse {
	questions := make([]questionResponse, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, questionResponse{
			Text:          question.Text,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
		})
	}
	return quizResponse{
		ID:        q.ID,
		Title:     q.Title,
		Questions: questions,
		CreatedBy: q.CreatedBy,
		CreatedAt: q.CreatedAt,
	}
}

// Create handles POST /v1/quizzes.
//
// @Summary      Create a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuizRequest  true  "Quiz details"
// @Success      201   {object}  quizResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/quizzes [post]
func (h *QuizHandler) Create(c echo.Context) error {
	var req createQuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	teacherID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	questions := make([]ports.QuestionInput, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, ports.QuestionInput{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	quiz, err := h.service.CreateQuiz(c.Request().Context(), ports.CreateQuizInput{
		Title:     req.Title,
		Questions: questions,
		TeacherID: teacherID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toQuizResponse(quiz))
}

// Mine handles GET /v1/teacher/quizzes.
//
// @Summary      List my quizzes
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listQuizzesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/teacher/quizzes [get]
func (h *QuizHandler) Mine(c echo.Context) error {
	teacherID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	quizzes, err := h.service.MyQuizzes(c.Request().Context(), teacherID)
	if err != nil {
		return err
	}

	data := make([]quizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		data = append(data, toQuizResponse(q))
	}
	return c.JSON(http.StatusOK, listQuizzesResponse{Data: data, Total: len(data)})
}
