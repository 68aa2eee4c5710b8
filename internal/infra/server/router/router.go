// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/billwise/backend/internal/integration/entrypoint/controller"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	billController     *controller.BillController
	calendarController *controller.CalendarController
	debtController     *controller.DebtController
	categoryController *controller.CategoryController
	settingsController *controller.SettingsController
	overviewController *controller.OverviewController
	receiptController  *controller.ReceiptController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	billController *controller.BillController,
	calendarController *controller.CalendarController,
	debtController *controller.DebtController,
	categoryController *controller.CategoryController,
	settingsController *controller.SettingsController,
	overviewController *controller.OverviewController,
	receiptController *controller.ReceiptController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		billController:     billController,
		calendarController: calendarController,
		debtController:     debtController,
		categoryController: categoryController,
		settingsController: settingsController,
		overviewController: overviewController,
		receiptController:  receiptController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}

			if r.authMiddleware != nil {
				account := v1.Group("/auth/account")
				account.Use(r.authMiddleware.Authenticate())
				{
					account.DELETE("", r.authController.DeleteAccount)
				}
			}
		}

		// Bill routes (require authentication)
		if r.billController != nil && r.authMiddleware != nil {
			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.GET("", r.billController.List)
				bills.POST("", r.billController.Create)
				bills.GET("/:id", r.billController.Get)
				bills.PATCH("/:id", r.billController.Update)
				bills.DELETE("/:id", r.billController.Deactivate)
				bills.POST("/:id/payments", r.billController.RecordPayment)
			}
		}

		// Calendar routes (require authentication)
		if r.calendarController != nil && r.authMiddleware != nil {
			calendar := v1.Group("/calendar")
			calendar.Use(r.authMiddleware.Authenticate())
			{
				calendar.GET("/:year/:month", r.calendarController.GetMonth)
			}
		}

		// Debt routes (require authentication)
		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.GET("/:id", r.debtController.Get)
				debts.PATCH("/:id", r.debtController.Update)
				debts.DELETE("/:id", r.debtController.Delete)
				debts.POST("/:id/payments", r.debtController.RecordPayment)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PATCH("", r.settingsController.Update)
				settings.PUT("/pin", r.settingsController.SetPin)
				settings.POST("/pin/verify", r.settingsController.VerifyPin)
				settings.DELETE("/pin", r.settingsController.DisablePin)
			}
		}

		// Overview route (requires authentication)
		if r.overviewController != nil && r.authMiddleware != nil {
			overview := v1.Group("/overview")
			overview.Use(r.authMiddleware.Authenticate())
			{
				overview.GET("", r.overviewController.Get)
			}
		}

		// Receipt scanning route (requires authentication)
		if r.receiptController != nil && r.authMiddleware != nil {
			receipts := v1.Group("/receipts")
			receipts.Use(r.authMiddleware.Authenticate())
			{
				receipts.POST("/scan", r.receiptController.Scan)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
