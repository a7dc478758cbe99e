package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kuispintar/internal/adapter"
	"kuispintar/internal/cache"
	"kuispintar/internal/config"
	"kuispintar/internal/database"
	"kuispintar/internal/domain"
	"kuispintar/internal/handler"
	"kuispintar/internal/logger"
	"kuispintar/internal/middleware"
	"kuispintar/internal/quizgen"
	"kuispintar/internal/repository"
	"kuispintar/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	curatedRepository := repository.NewCuratedQuestionDatabaseAdapter(db)
	historyRepository := repository.NewAnswerHistoryDatabaseAdapter(db)

	// Redis is best-effort: without it the API still serves sessions,
	// only streak tracking degrades.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, streak tracking disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	rng := quizgen.NewLockedRand(time.Now().UnixNano())
	generator := quizgen.NewGenerator(rng)

	sessionService := service.NewSessionService(
		historyRepository,
		curatedRepository,
		generator,
		rng,
		cfg.Engine.DefaultCount,
		cfg.Engine.MaxCount,
	)
	progressService := service.NewProgressService(historyRepository, cacheAdapter, cfg.Engine.StreakTTL)

	quizHandler := handler.NewQuizHandler(sessionService, progressService)
	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Get("/quiz/session", validationMiddleware.ValidateSessionParams(), quizHandler.GetSession)
	api.Post("/quiz/answer", quizHandler.SubmitAnswer)
	api.Get("/quiz/streak", quizHandler.GetStreak)
	api.Get("/subjects", validationMiddleware.ValidateLevelParam(), quizHandler.GetSubjects)

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		appLogger.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLogger.Error("Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Starting server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
