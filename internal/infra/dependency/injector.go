// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/billwise/backend/config"
	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/application/usecase/auth"
	"github.com/billwise/backend/internal/application/usecase/bill"
	"github.com/billwise/backend/internal/application/usecase/calendar"
	"github.com/billwise/backend/internal/application/usecase/category"
	"github.com/billwise/backend/internal/application/usecase/debt"
	"github.com/billwise/backend/internal/application/usecase/overview"
	"github.com/billwise/backend/internal/application/usecase/receipt"
	"github.com/billwise/backend/internal/application/usecase/settings"
	"github.com/billwise/backend/internal/infra/server/router"
	"github.com/billwise/backend/internal/integration/adapters"
	"github.com/billwise/backend/internal/integration/cache"
	"github.com/billwise/backend/internal/integration/email"
	"github.com/billwise/backend/internal/integration/email/templates"
	"github.com/billwise/backend/internal/integration/entrypoint/controller"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
	"github.com/billwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// Reminder pipeline; nil when email sending is disabled.
	ReminderWorker    *email.Worker
	ReminderScheduler *email.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case the calendar cache is disabled.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	billRepo := persistence.NewBillRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	reminderQueueRepo := persistence.NewReminderQueueRepository(db)

	// Create calendar cache
	var calendarCache adapter.CalendarCache
	if redisClient != nil {
		calendarCache = cache.NewCalendarCache(redisClient, cfg.Redis.CacheTTL)
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	receiptScanner := adapters.NewGeminiScanner(cfg.Receipt.GeminiAPIKey)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create bill use cases
	listBillsUseCase := bill.NewListBillsUseCase(billRepo)
	getBillUseCase := bill.NewGetBillUseCase(billRepo)
	createBillUseCase := bill.NewCreateBillUseCase(billRepo, categoryRepo, calendarCache)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo, categoryRepo, calendarCache)
	deactivateBillUseCase := bill.NewDeactivateBillUseCase(billRepo, calendarCache)
	recordBillPaymentUseCase := bill.NewRecordPaymentUseCase(billRepo, calendarCache)

	// Create calendar use case
	getMonthUseCase := calendar.NewGetMonthUseCase(billRepo, userRepo, calendarCache)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	getDebtUseCase := debt.NewGetDebtUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
	recordDebtPaymentUseCase := debt.NewRecordPaymentUseCase(debtRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, billRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, billRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(userRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(userRepo, calendarCache)
	setPinUseCase := settings.NewSetPinUseCase(userRepo, passwordService)
	verifyPinUseCase := settings.NewVerifyPinUseCase(userRepo, passwordService)
	disablePinUseCase := settings.NewDisablePinUseCase(userRepo, passwordService)

	// Create overview and receipt use cases
	getOverviewUseCase := overview.NewGetOverviewUseCase(billRepo, debtRepo)
	scanReceiptUseCase := receipt.NewScanReceiptUseCase(receiptScanner)

	// Create reminder pipeline when email sending is enabled
	var reminderWorker *email.Worker
	var reminderScheduler *email.Scheduler
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}

		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		reminderService := email.NewService(reminderQueueRepo)

		reminderWorker = email.NewWorker(reminderQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		reminderScheduler = email.NewScheduler(billRepo, userRepo, reminderService, email.SchedulerConfig{
			Every:      cfg.Email.ScheduleEvery,
			WindowDays: cfg.Email.DueSoonWindow,
		})
	}

	// Create controllers
	var cacheHealthChecker func() bool
	if redisClient != nil {
		cacheHealthChecker = func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		deleteAccountUseCase,
	)

	billController := controller.NewBillController(
		listBillsUseCase,
		getBillUseCase,
		createBillUseCase,
		updateBillUseCase,
		deactivateBillUseCase,
		recordBillPaymentUseCase,
	)

	calendarController := controller.NewCalendarController(getMonthUseCase)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		getDebtUseCase,
		createDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		recordDebtPaymentUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		setPinUseCase,
		verifyPinUseCase,
		disablePinUseCase,
	)

	overviewController := controller.NewOverviewController(getOverviewUseCase)
	receiptController := controller.NewReceiptController(scanReceiptUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		billController,
		calendarController,
		debtController,
		categoryController,
		settingsController,
		overviewController,
		receiptController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		ReminderWorker:    reminderWorker,
		ReminderScheduler: reminderScheduler,
	}, nil
}
