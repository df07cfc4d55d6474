package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"linguaquest/internal/cache"
	"linguaquest/internal/config"
	"linguaquest/internal/database"
	"linguaquest/internal/generator"
	"linguaquest/internal/handlers"
	"linguaquest/internal/models"
	"linguaquest/internal/repository"
	"linguaquest/internal/security"
	"linguaquest/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	db, err := database.OpenFromConfig(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("database connection established", zap.String("type", cfg.DatabaseType))

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations completed")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	wordRepo := repository.NewWordRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	wordTaskRepo := repository.NewWordTaskRepository(db)

	// Services
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	contentGen := generator.NewOpenAIGenerator(cfg.GeneratorAPIKey, cfg.GeneratorBaseURL, cfg.GeneratorModel, cfg.GeneratorTimeout)

	authService := service.NewAuthService(userRepo, tokens, logger)
	topicService := service.NewTopicService(topicRepo, cache.NewTTL[[]models.Topic](cfg.TopicCacheTTL), logger)
	learnedService := service.NewLearnedWordsService(wordTaskRepo)
	vocabService := service.NewVocabService(wordRepo, learnedService, contentGen, cfg.GeneratorTimeout, logger)
	taskService := service.NewTaskService(db, taskRepo, wordRepo, wordTaskRepo, vocabService, logger)

	if err := topicService.EnsureDefaults(); err != nil {
		logger.Warn("failed to seed default topics", zap.Error(err))
	}

	// Handlers
	limiter := security.NewRateLimiter(60, time.Minute)
	mw := handlers.NewMiddleware(tokens, limiter, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)
	topicHandler := handlers.NewTopicHandler(topicService, logger)
	wordHandler := handlers.NewWordHandler(vocabService, logger)
	taskHandler := handlers.NewTaskHandler(taskService, logger)

	mux := http.NewServeMux()

	// Public routes
	mux.Handle("POST /api/auth/register", mw.RateLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login", mw.RateLimit(http.HandlerFunc(authHandler.Login)))

	// Authenticated routes
	mux.Handle("GET /api/auth/me", mw.Authenticate(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/auth/level", mw.Authenticate(http.HandlerFunc(authHandler.SetLevel)))
	mux.Handle("GET /api/topics", mw.Authenticate(http.HandlerFunc(topicHandler.List)))
	mux.Handle("POST /api/topics", mw.Authenticate(http.HandlerFunc(topicHandler.Create)))
	mux.Handle("GET /api/words/{topic}/{level}", mw.Authenticate(http.HandlerFunc(wordHandler.GetWords)))
	mux.Handle("POST /api/tasks/start", mw.Authenticate(http.HandlerFunc(taskHandler.Start)))
	mux.Handle("GET /api/tasks", mw.Authenticate(http.HandlerFunc(taskHandler.List)))
	mux.Handle("GET /api/tasks/{id}", mw.Authenticate(http.HandlerFunc(taskHandler.Get)))
	mux.Handle("POST /api/tasks/{id}/words", mw.Authenticate(http.HandlerFunc(taskHandler.AddWords)))
	mux.Handle("POST /api/tasks/{id}/complete", mw.Authenticate(http.HandlerFunc(taskHandler.Complete)))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      mw.LogRequests(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var logger *zap.Logger
	var err error
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
