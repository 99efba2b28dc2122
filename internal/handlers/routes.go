package handlers

import (
	"github.com/labstack/echo/v4"
)

// Router groups the API handlers
type Router struct {
	Budget       *BudgetHandler
	Transactions *TransactionHandler
	Holdings     *HoldingsHandler
	Forecast     *ForecastHandler
	Health       *HealthCheckHandler
}

// Register mounts the API under /api/v1. Owner-scoped routes run behind
// requireOwner; health and forecasts do not need an owner.
func (r *Router) Register(e *echo.Echo, requireOwner echo.MiddlewareFunc) {
	e.GET("/health", r.Health.HealthCheck)

	api := e.Group("/api/v1")
	api.GET("/forecast/:symbol", r.Forecast.GetForecast)

	owned := api.Group("", requireOwner)

	owned.POST("/budget", r.Budget.InitializeBudget)
	owned.GET("/budget", r.Budget.GetBudget)
	owned.POST("/budget/payments", r.Budget.Spend)
	owned.POST("/budget/save", r.Budget.SaveBudget)

	owned.GET("/transactions", r.Transactions.ListTransactions)
	owned.GET("/transactions/summary", r.Transactions.GetSummary)
	owned.POST("/transactions/flush", r.Transactions.FlushTransactions)

	owned.POST("/holdings", r.Holdings.RecordPurchase)
	owned.GET("/holdings", r.Holdings.ListHoldings)
	owned.GET("/holdings/summary", r.Holdings.GetSummary)
	owned.POST("/holdings/flush", r.Holdings.FlushHoldings)
}
