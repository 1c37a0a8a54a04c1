// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/luismonroy1971/actividad-sub000/config"
	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/activity"
	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/expense"
	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/financial"
	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/order"
	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/pricing"
	"github.com/luismonroy1971/actividad-sub000/internal/infra/server/router"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/adapters"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/email"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/controller"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/middleware"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient and dbHealthChecker may be nil; the rate limiter then fails
// open and the health endpoint reports a degraded database.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Create repositories
	activityRepo := persistence.NewActivityRepository(db)
	optionRepo := persistence.NewOptionRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create use cases
	priceResolver := pricing.NewResolveOptionPriceUseCase(optionRepo)

	createActivityUseCase := activity.NewCreateActivityUseCase(activityRepo)
	getActivityUseCase := activity.NewGetActivityUseCase(activityRepo)
	listActivitiesUseCase := activity.NewListActivitiesUseCase(activityRepo)
	updateActivityStatusUseCase := activity.NewUpdateActivityStatusUseCase(activityRepo)
	addOptionUseCase := activity.NewAddOptionUseCase(activityRepo, optionRepo)
	updateOptionUseCase := activity.NewUpdateOptionUseCase(activityRepo, optionRepo)
	removeOptionUseCase := activity.NewRemoveOptionUseCase(activityRepo, optionRepo)

	placeOrderUseCase := order.NewPlaceOrderUseCase(activityRepo, clientRepo, orderRepo, priceResolver)
	updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo, activityRepo, clientRepo, priceResolver, emailQueueRepo)
	deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo)
	listActivityOrdersUseCase := order.NewListActivityOrdersUseCase(activityRepo, orderRepo)
	listClientOrdersUseCase := order.NewListClientOrdersUseCase(clientRepo, orderRepo)

	createExpenseUseCase := expense.NewCreateExpenseUseCase(activityRepo, expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(activityRepo, expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	getSummaryUseCase := financial.NewGetSummaryUseCase(activityRepo, orderRepo, expenseRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	activityController := controller.NewActivityController(
		createActivityUseCase,
		getActivityUseCase,
		listActivitiesUseCase,
		updateActivityStatusUseCase,
		addOptionUseCase,
		updateOptionUseCase,
		removeOptionUseCase,
	)
	orderController := controller.NewOrderController(
		placeOrderUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
		listActivityOrdersUseCase,
		listClientOrdersUseCase,
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	financialController := controller.NewFinancialController(getSummaryUseCase)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	orderRateLimiter := middleware.NewRateLimiterWithConfig(
		redisClient,
		cfg.Server.OrderRateLimit,
		cfg.Server.OrderRateLimitWindow,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		activityController,
		orderController,
		expenseController,
		financialController,
		orderRateLimiter,
		authMiddleware,
	)

	// Create email worker when delivery is configured
	var worker *email.Worker
	if cfg.Email.ResendAPIKey != "" && cfg.Email.WorkerEnabled {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker = email.NewWorker(emailQueueRepo, sender, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: worker,
	}
}
