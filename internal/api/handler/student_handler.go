package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

// StudentHandler serves the student dashboard: progress, the practice quiz,
// and quiz submissions.
type StudentHandler struct {
	service ports.ProgressService
}

func NewStudentHandler(service ports.ProgressService) *StudentHandler {
	return &StudentHandler{service: service}
}

type progressResponse struct {
	Data []domain.CourseProgress `json:"data"`
}

type quizAnswerRequest struct {
	QuestionIndex int `json:"question_index" validate:"min=0"`
	Answer        int `json:"answer"         validate:"min=0,max=3"`
}

type submitQuizRequest struct {
	QuizID  string              `json:"quiz_id" validate:"required"`
	Answers []quizAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

type submitQuizResponse struct {
	Message string `json:"message"`
}

// Progress handles GET /v1/student/progress.
//
// @Summary      Student course progress
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  progressResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/student/progress [get]
func (h *StudentHandler) Progress(c echo.Context) error {
	studentID, name, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.service.Dashboard(c.Request().Context(), studentID, name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, progressResponse{Data: entries})
}

// Quiz handles GET /v1/student/quiz — the practice quiz behind "Take Quiz".
//
// @Summary      Practice quiz
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  quizResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/student/quiz [get]
func (h *StudentHandler) Quiz(c echo.Context) error {
	quiz, err := h.service.PracticeQuiz(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuizResponse(quiz))
}

// SubmitQuiz handles POST /v1/student/quiz/submissions. Submissions are
// acknowledged but not scored; no result is written back to the store.
//
// @Summary      Submit the practice quiz
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitQuizRequest  true  "Selected answers"
// @Success      200   {object}  submitQuizResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/student/quiz/submissions [post]
func (h *StudentHandler) SubmitQuiz(c echo.Context) error {
	var req submitQuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	studentID, name, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	answers := make([]ports.QuizAnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, ports.QuizAnswerInput{
			QuestionIndex: a.QuestionIndex,
			Answer:        a.Answer,
		})
	}

	if err := h.service.SubmitQuiz(c.Request().Context(), ports.SubmitQuizInput{
		QuizID:    req.QuizID,
		Answers:   answers,
		StudentID: studentID,
		Name:      name,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, submitQuizResponse{Message: "quiz submitted successfully"})
}
