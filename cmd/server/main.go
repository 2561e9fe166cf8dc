package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartlms/elearning-system/internal/api"
	"github.com/smartlms/elearning-system/internal/core/service"
	"github.com/smartlms/elearning-system/internal/infrastructure/config"
	mongodb "github.com/smartlms/elearning-system/internal/infrastructure/db/mongo"
	redisdb "github.com/smartlms/elearning-system/internal/infrastructure/db/redis"
	"github.com/smartlms/elearning-system/internal/infrastructure/pdf"
	"github.com/smartlms/elearning-system/internal/infrastructure/queue"
	"github.com/smartlms/elearning-system/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	quizRepo := mongodb.NewQuizRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := courseRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create course indexes")
	}

	// --- Activity pipeline ---
	dedup := redisdb.NewDedupChecker(rdb)
	activityService := service.NewActivityService(activityRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	dispatcher.Start(ctx)

	// --- Services ---
	catalogCache := redisdb.NewCatalogCache(rdb)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	courseService := service.NewCourseService(courseRepo, catalogCache, dispatcher, log)
	quizService := service.NewQuizService(quizRepo, log)
	progressService := service.NewProgressService(dispatcher, log)
	certificateService := service.NewCertificateService(courseRepo, pdf.NewCertificateRenderer(), dispatcher, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Services{
		Auth:        authService,
		Course:      courseService,
		Quiz:        quizService,
		Progress:    progressService,
		Certificate: certificateService,
	}, db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	cancel() // stop dispatcher workers

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
