// Package database provides the data access layer for the application.
//
// The layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── users/           # Credential storage for the auth subsystem
//	├── categories/      # Expense category CRUD
//	├── expenses/        # Per-user expense CRUD
//	├── ledgers/         # Lend/borrow ledger CRUD
//	├── tours/           # Tours and share links
//	├── entries/         # Per-day tour entries and total-cost upkeep
//	└── reports/         # SUM/GROUP BY aggregation queries
//
// Each sub-package provides a Repository holding a *gorm.DB:
//
//	db, err := database.NewDatabase("./spndy.db")
//	expensesRepo := expenses.NewRepository(db.DB)
//
// Repositories implement the store interfaces declared by their consumers
// (internal/http controllers and internal/auth), e.g.:
//
//	var _ http.ExpenseStore = (*expenses.Repository)(nil)
package database
