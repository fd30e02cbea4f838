// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/usecase/achievement"
	"github.com/spendwise/backend/internal/application/usecase/auth"
	"github.com/spendwise/backend/internal/application/usecase/category"
	"github.com/spendwise/backend/internal/application/usecase/goal"
	"github.com/spendwise/backend/internal/application/usecase/record"
	"github.com/spendwise/backend/internal/application/usecase/report"
	"github.com/spendwise/backend/internal/application/usecase/suggestion"
	"github.com/spendwise/backend/internal/infra/server/router"
	"github.com/spendwise/backend/internal/integration/adapters"
	"github.com/spendwise/backend/internal/integration/email"
	"github.com/spendwise/backend/internal/integration/email/templates"
	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
	"github.com/spendwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case the login rate limiter falls back to
// its in-process implementation.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	recordRepo := persistence.NewRecordRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	achievementRepo := persistence.NewAchievementRepository(db)
	suggestionRepo := persistence.NewSuggestionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	questionRepo := persistence.NewSecurityQuestionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	suggestionService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	reportRenderer := adapters.NewPDFRenderer()

	// Email queue service and worker
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	emailRenderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, emailRenderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create achievement use cases. The evaluator is handed to the goal and
	// record use cases as their post-write hook.
	evaluateAchievementsUseCase := achievement.NewEvaluateAchievementsUseCase(
		achievementRepo,
		recordRepo,
		goalRepo,
		userRepo,
		emailService,
	)
	listAchievementsUseCase := achievement.NewListAchievementsUseCase(achievementRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, questionRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Security-question recovery use cases
	listQuestionsUseCase := auth.NewListSecurityQuestionsUseCase(questionRepo)
	setAnswerUseCase := auth.NewSetSecurityAnswerUseCase(questionRepo, passwordService)
	resetQuestionUseCase := auth.NewGetResetQuestionUseCase(userRepo, questionRepo)
	answerResetUseCase := auth.NewAnswerResetUseCase(userRepo, questionRepo, passwordService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, recordRepo)

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, categoryRepo, evaluateAchievementsUseCase)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, categoryRepo)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo)

	// Create goal use cases
	minGoalAmount := decimal.NewFromFloat(cfg.Goals.MinAmount)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, categoryRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, categoryRepo, evaluateAchievementsUseCase, minGoalAmount)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, categoryRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create report use cases
	generateReportUseCase := report.NewGenerateReportUseCase(recordRepo)
	exportReportUseCase := report.NewExportReportUseCase(generateReportUseCase, reportRenderer)

	// Create suggestion use case
	getSuggestionsUseCase := suggestion.NewGetSuggestionsUseCase(
		suggestionService,
		suggestionRepo,
		recordRepo,
		goalRepo,
	)

	// Create controllers
	healthController := controller.NewHealthController(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
		listQuestionsUseCase,
		resetQuestionUseCase,
		answerResetUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
		setAnswerUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	recordController := controller.NewRecordController(
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	reportController := controller.NewReportController(
		generateReportUseCase,
		exportReportUseCase,
	)

	achievementController := controller.NewAchievementController(listAchievementsUseCase)
	suggestionController := controller.NewSuggestionController(getSuggestionsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter gin.HandlerFunc
	switch {
	case cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test":
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute).Middleware()
	case redisClient != nil:
		loginRateLimiter = middleware.NewRedisRateLimiter(redisClient, 5, 1*time.Minute).Middleware()
	default:
		loginRateLimiter = middleware.NewRateLimiter().Middleware()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		recordController,
		goalController,
		reportController,
		achievementController,
		suggestionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
