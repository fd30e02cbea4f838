// Package main is the entry point for the SpendWise API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/usecase/achievement"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/infra/db"
	"github.com/spendwise/backend/internal/infra/dependency"
	"github.com/spendwise/backend/internal/integration/persistence"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting SpendWise API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.CategoryModel{},
		&model.RecordModel{},
		&model.GoalModel{},
		&model.AchievementModel{},
		&model.UserAchievementModel{},
		&model.SuggestionSetModel{},
		&model.EmailQueueModel{},
		&model.SecurityQuestionModel{},
		&model.SecurityAnswerModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	// One active goal per (user, category, period) in the legacy model
	if err := database.DB().Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_goal_per_category_period
		 ON spending_goals (user_id, category_id, period)
		 WHERE active AND category_id IS NOT NULL`,
	).Error; err != nil {
		slog.Error("Failed to create goal uniqueness index", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Seed the achievement catalogue
	achievementRepo := persistence.NewAchievementRepository(database.DB())
	if err := achievementRepo.SeedDefinitions(context.Background(), achievement.Definitions()); err != nil {
		slog.Error("Failed to seed achievements", "error", err)
		os.Exit(1)
	}

	// Seed the security question catalogue
	questionRepo := persistence.NewSecurityQuestionRepository(database.DB())
	if err := questionRepo.SeedQuestions(context.Background(), entity.SecurityQuestionCatalogue()); err != nil {
		slog.Error("Failed to seed security questions", "error", err)
		os.Exit(1)
	}

	// Redis backs the login rate limiter; the API stays up without it
	var redisClient *redis.Client
	if opts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, using in-process rate limiting", "error", err)
	} else {
		opts.Password = cfg.Redis.Password
		opts.DB = cfg.Redis.DB
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unavailable, using in-process rate limiting", "error", err)
			redisClient = nil
		}
	}

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Start the email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(workerCtx)
	} else {
		slog.Info("Email worker disabled")
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
