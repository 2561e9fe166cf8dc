package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartlms/elearning-system/internal/api/handler"
	"github.com/smartlms/elearning-system/internal/api/middleware"
	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
	"github.com/smartlms/elearning-system/internal/infrastructure/http/handlers"
)

// Services bundles the use-case implementations the router exposes.
type Services struct {
	Auth        ports.AuthService
	Course      ports.CourseService
	Quiz        ports.QuizService
	Progress    ports.ProgressService
	Certificate ports.CertificateService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Three access tiers: open catalog and auth routes, authenticated rating,
// and role-scoped dashboards.
func NewRouter(services Services, db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("elearning"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(services.Auth)
	courseHandler := handler.NewCourseHandler(services.Course)
	quizHandler := handler.NewQuizHandler(services.Quiz)
	studentHandler := handler.NewStudentHandler(services.Progress)
	certificateHandler := handler.NewCertificateHandler(services.Certificate)

	authRequired := middleware.Auth(jwtSecret)
	teacherOnly := middleware.RBAC(domain.RoleTeacher)
	studentOnly := middleware.RBAC(domain.RoleStudent)

	// --- Auth routes (open) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login/student", authHandler.LoginStudent)
	e.POST("/auth/login/teacher", authHandler.LoginTeacher)

	// --- Course catalog (open to anonymous visitors) ---
	e.GET("/v1/courses", courseHandler.List)
	e.GET("/v1/courses/:id", courseHandler.Get)

	// --- Rating (any authenticated viewer) ---
	e.POST("/v1/courses/:id/rating", courseHandler.Rate, authRequired)

	// --- Teacher management ---
	teacher := e.Group("", authRequired, teacherOnly)
	teacher.POST("/v1/courses", courseHandler.Create)
	teacher.PUT("/v1/courses/:id", courseHandler.Update)
	teacher.DELETE("/v1/courses/:id", courseHandler.Delete)
	teacher.GET("/v1/teacher/courses", courseHandler.Mine)
	teacher.POST("/v1/quizzes", quizHandler.Create)
	teacher.GET("/v1/teacher/quizzes", quizHandler.Mine)

	// --- Student dashboard ---
	student := e.Group("/v1/student", authRequired, studentOnly)
	student.GET("/progress", studentHandler.Progress)
	student.GET("/quiz", studentHandler.Quiz)
	student.POST("/quiz/submissions", studentHandler.SubmitQuiz)

	// --- Certificates (student only) ---
	e.POST("/v1/certificates", certificateHandler.Generate, authRequired, studentOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
