// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/controller"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	activityController  *controller.ActivityController
	orderController     *controller.OrderController
	expenseController   *controller.ExpenseController
	financialController *controller.FinancialController
	orderRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	activityController *controller.ActivityController,
	orderController *controller.OrderController,
	expenseController *controller.ExpenseController,
	financialController *controller.FinancialController,
	orderRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		activityController:  activityController,
		orderController:     orderController,
		expenseController:   expenseController,
		financialController: financialController,
		orderRateLimiter:    orderRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	if r.authMiddleware == nil {
		return
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		if r.activityController != nil {
			activities := v1.Group("/activities")
			{
				activities.GET("", r.activityController.List)
				activities.POST("", r.activityController.Create)
				activities.GET("/:id", r.activityController.Get)
				activities.PATCH("/:id/status", r.activityController.UpdateStatus)
				activities.POST("/:id/options", r.activityController.AddOption)
				activities.PATCH("/:id/options/:optionId", r.activityController.UpdateOption)
				activities.DELETE("/:id/options/:optionId", r.activityController.RemoveOption)

				if r.orderController != nil {
					activities.GET("/:id/orders", r.orderController.ListByActivity)
				}
				if r.expenseController != nil {
					activities.POST("/:id/expenses", r.expenseController.Create)
					activities.GET("/:id/expenses", r.expenseController.List)
				}
				if r.financialController != nil {
					activities.GET("/:id/summary", r.financialController.GetSummary)
				}
			}
		}

		if r.orderController != nil {
			orders := v1.Group("/orders")
			{
				if r.orderRateLimiter != nil {
					orders.POST("", r.orderRateLimiter.Middleware(), r.orderController.Place)
				} else {
					orders.POST("", r.orderController.Place)
				}
				orders.PATCH("/:id", r.orderController.Update)
				orders.DELETE("/:id", r.orderController.Delete)
			}

			v1.GET("/clients/:id/orders", r.orderController.ListByClient)
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}
	}
}
