package http

import (
	"github.com/spndy/spndy-api/internal/database/reports"
	"github.com/spndy/spndy-api/internal/entities"
)

// Per-controller store interfaces. Each is implemented by the matching
// database sub-package repository; tests substitute in-memory fakes.

// CategoryStore provides category persistence.
type CategoryStore interface {
	CreateCategory(name string) (*entities.Category, error)
	GetAllCategories() ([]entities.Category, error)
	GetCategoryByID(id uint) (*entities.Category, error)
	UpdateCategory(id uint, name string) (*entities.Category, error)
	DeleteCategory(id uint) error
}

// ExpenseStore provides expense persistence scoped to a user.
type ExpenseStore interface {
	CreateExpense(expense *entities.Expense) (*entities.Expense, error)
	GetExpensesForUser(userID uint) ([]entities.Expense, error)
	GetExpenseByID(id, userID uint) (*entities.Expense, error)
	UpdateExpense(id, userID uint, updates map[string]any) (*entities.Expense, error)
	DeleteExpense(id, userID uint) error
	CategoryExists(categoryID uint) (bool, error)
}

// LedgerStore provides lend/borrow record persistence scoped to a user.
type LedgerStore interface {
	CreateLedger(ledger *entities.Ledger) (*entities.Ledger, error)
	GetLedgersForUser(userID uint) ([]entities.Ledger, error)
	GetLedgerByID(id string, userID uint) (*entities.Ledger, error)
	UpdateLedger(id string, userID uint, updates map[string]any) (*entities.Ledger, error)
	DeleteLedger(id string, userID uint) error
}

// TourStore provides tour and share link persistence.
type TourStore interface {
	CreateTour(tour *entities.Tour) (*entities.Tour, error)
	GetAllTours() ([]entities.Tour, error)
	GetTourByID(id string) (*entities.Tour, error)
	UpdateTour(id string, updates map[string]any) (*entities.Tour, error)
	DeleteTour(id string) error
	SetShareLink(tourID string, isPublic bool) (*entities.ShareLink, error)
	GetTourByShareCode(code string) (*entities.Tour, error)
}

// EntryStore provides tour entry persistence.
type EntryStore interface {
	CreateEntry(entry *entities.TourEntry) (*entities.TourEntry, error)
	GetEntryByID(id string) (*entities.TourEntry, error)
	UpdateEntry(id string, updates map[string]any) (*entities.TourEntry, error)
	DeleteEntry(id string) error
}

// ReportStore provides expense aggregation queries. A userID of zero
// aggregates across all users.
type ReportStore interface {
	TotalBetween(userID uint, from, to string) (float64, error)
	CategoryTotalsBetween(userID uint, from, to string) ([]reports.CategoryTotal, error)
	ExpensesBetween(userID uint, from, to string) ([]entities.Expense, error)
}
