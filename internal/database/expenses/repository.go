// Package expenses provides database operations for per-user expense records.
//
// It implements the ExpenseStore interface defined in internal/http/stores.go.
package expenses

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spndy/spndy-api/internal/entities"
)

// ErrNotFound is returned when no expense matches the ID for the user.
var ErrNotFound = errors.New("expense not found")

// Repository handles expense database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new expenses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpense inserts an expense and returns it with its category preloaded.
func (r *Repository) CreateExpense(expense *entities.Expense) (*entities.Expense, error) {
	if err := r.db.Create(expense).Error; err != nil {
		return nil, err
	}
	return r.getByID(expense.ID)
}

// GetExpensesForUser returns the user's expenses, newest date first.
func (r *Repository) GetExpensesForUser(userID uint) ([]entities.Expense, error) {
	var out []entities.Expense
	err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&out).Error
	return out, err
}

// GetExpenseByID returns one expense scoped to its owner.
func (r *Repository) GetExpenseByID(id, userID uint) (*entities.Expense, error) {
	var expense entities.Expense
	err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// UpdateExpense applies the given column values to the user's expense and
// returns the refreshed row. Updates go through a single named-field call
// so partial state is never written.
func (r *Repository) UpdateExpense(id, userID uint, updates map[string]any) (*entities.Expense, error) {
	expense, err := r.GetExpenseByID(id, userID)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.getByID(id)
}

// DeleteExpense removes the user's expense.
func (r *Repository) DeleteExpense(id, userID uint) error {
	if _, err := r.GetExpenseByID(id, userID); err != nil {
		return err
	}
	return r.db.Delete(&entities.Expense{}, id).Error
}

func (r *Repository) getByID(id uint) (*entities.Expense, error) {
	var expense entities.Expense
	err := r.db.Preload("Category").First(&expense, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// CategoryExists reports whether the referenced category is present.
func (r *Repository) CategoryExists(categoryID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Category{}).Where("id = ?", categoryID).Count(&count).Error
	return count > 0, err
}
