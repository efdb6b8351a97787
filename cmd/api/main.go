package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusgrid/results-api/internal/config"
	"github.com/campusgrid/results-api/internal/database"
	"github.com/campusgrid/results-api/internal/handler"
	"github.com/campusgrid/results-api/internal/middleware"
	"github.com/campusgrid/results-api/internal/models"
	"github.com/campusgrid/results-api/internal/repository"
	"github.com/campusgrid/results-api/internal/router"
	"github.com/campusgrid/results-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Student{}, &models.Teacher{}, &models.Subject{}, &models.Result{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer cache.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	resultRepo := repository.NewResultRepository(db)

	summaryService := service.NewSummaryService(studentRepo, resultRepo, cache, cfg.SummaryCacheTTL, logger)
	authService := service.NewAuthService(studentRepo, teacherRepo, validate, logger)
	studentService := service.NewStudentService(studentRepo, resultRepo, logger)
	subjectService := service.NewSubjectService(subjectRepo)
	resultService := service.NewResultService(resultRepo, studentRepo, subjectRepo, teacherRepo, validate, summaryService, logger)

	if cfg.SeedOnStart {
		seeder := service.NewSeedService(studentRepo, teacherRepo, subjectRepo, resultRepo, true, logger)
		if err := seeder.EnsureSampleData(context.Background()); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}
	}

	authHandler := handler.NewAuthHandler(authService, logger)
	studentHandler := handler.NewStudentHandler(studentService, summaryService, logger)
	subjectHandler := handler.NewSubjectHandler(subjectService, logger)
	resultHandler := handler.NewResultHandler(resultService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:    authHandler,
		StudentHandler: studentHandler,
		SubjectHandler: subjectHandler,
		ResultHandler:  resultHandler,
		WriteLimiter:   middleware.RateLimit("results", cfg.RateLimitMax, cfg.RateLimitWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
