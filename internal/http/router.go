package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	// CORS runs before routing so preflights get answered for every path
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	// Health endpoints
	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", healthController.Ping)

	api := router.Group("/api")

	// Authentication
	cfg.AuthController.RegisterRoutes(api.Group("/auth"))

	requireAuth := cfg.AuthMiddleware.RequireAuth()
	optionalAuth := cfg.AuthMiddleware.OptionalAuth()

	// Categories are a shared catalogue, readable and writable without a
	// session
	categoriesController := NewCategoriesController(cfg.CategoryStore)
	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.POST("", categoriesController.CreateCategory)
		categoriesGroup.GET("", categoriesController.GetCategories)
		categoriesGroup.GET("/:id", categoriesController.GetCategoryByID)
		categoriesGroup.PUT("/:id", categoriesController.UpdateCategory)
		categoriesGroup.DELETE("/:id", categoriesController.DeleteCategory)
	}

	// Expenses are always scoped to the authenticated user
	expensesController := NewExpensesController(cfg.ExpenseStore)
	expensesGroup := api.Group("/expenses", requireAuth)
	{
		expensesGroup.POST("", expensesController.CreateExpense)
		expensesGroup.GET("", expensesController.GetExpenses)
		expensesGroup.GET("/:id", expensesController.GetExpenseByID)
		expensesGroup.PUT("/:id", expensesController.UpdateExpense)
		expensesGroup.DELETE("/:id", expensesController.DeleteExpense)
	}

	// Ledgers record money lent and borrowed, scoped like expenses
	ledgersController := NewLedgersController(cfg.LedgerStore)
	ledgersGroup := api.Group("/ledgers", requireAuth)
	{
		ledgersGroup.POST("", ledgersController.CreateLedger)
		ledgersGroup.GET("", ledgersController.GetLedgers)
		ledgersGroup.GET("/:id", ledgersController.GetLedgerByID)
		ledgersGroup.PUT("/:id", ledgersController.UpdateLedger)
		ledgersGroup.DELETE("/:id", ledgersController.DeleteLedger)
	}

	// Reports serve household-wide numbers to anonymous callers and
	// personal numbers to authenticated ones
	reportsController := NewReportsController(cfg.ReportStore)
	reportsGroup := api.Group("/reports", optionalAuth)
	{
		reportsGroup.GET("/monthly/:year/:month", reportsController.GetMonthlyExpense)
		reportsGroup.GET("/monthly/list/:year/:month", reportsController.GetMonthlyExpenseList)
		reportsGroup.GET("/yearly/:year", reportsController.GetYearlyExpense)
		reportsGroup.GET("/range", reportsController.GetDateRangeExpense)
		reportsGroup.GET("/myexpense/range", requireAuth, reportsController.GetMyDateRangeExpense)
	}

	// Tours are readable publicly; shared links resolve without a session
	toursController := NewToursController(cfg.TourStore)
	toursGroup := api.Group("/tours")
	{
		toursGroup.POST("", toursController.CreateTour)
		toursGroup.GET("", toursController.GetTours)
		toursGroup.GET("/shared/:code", toursController.GetSharedTour)
		toursGroup.GET("/:id", toursController.GetTourByID)
		toursGroup.PUT("/:id", toursController.UpdateTour)
		toursGroup.DELETE("/:id", toursController.DeleteTour)
		toursGroup.POST("/:id/share", toursController.ShareTour)
	}

	// Tour entries carry ownership, so mutations need a session
	entriesController := NewEntriesController(cfg.EntryStore, cfg.TourStore)
	entriesGroup := api.Group("/entries", requireAuth)
	{
		entriesGroup.POST("", entriesController.CreateEntry)
		entriesGroup.PUT("/:entryId", entriesController.UpdateEntry)
		entriesGroup.DELETE("/:tourId/:entryId", entriesController.DeleteEntry)
	}

	return router
}
