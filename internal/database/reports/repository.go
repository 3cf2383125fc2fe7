// Package reports provides the aggregation queries behind the report endpoints.
//
// It implements the ReportStore interface defined in internal/http/stores.go.
// All summation and grouping happens in SQL; a userID of 0 means "all users"
// (report routes serve both anonymous and authenticated callers).
package reports

import (
	"gorm.io/gorm"

	"github.com/spndy/spndy-api/internal/entities"
)

// CategoryTotal is one row of a per-category expense breakdown.
type CategoryTotal struct {
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Total        float64 `json:"total"`
}

// Repository handles report aggregation queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reports repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TotalBetween returns the expense sum for the inclusive date range.
func (r *Repository) TotalBetween(userID uint, from, to string) (float64, error) {
	var total float64
	query := r.db.Model(&entities.Expense{}).
		Where("date BETWEEN ? AND ?", from, to).
		Select("COALESCE(SUM(amount), 0)")
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Scan(&total).Error
	return total, err
}

// CategoryTotalsBetween returns per-category sums for the inclusive range.
func (r *Repository) CategoryTotalsBetween(userID uint, from, to string) ([]CategoryTotal, error) {
	rows := []CategoryTotal{}
	query := r.db.Model(&entities.Expense{}).
		Select("categories.id AS category_id, categories.name AS category_name, SUM(expenses.amount) AS total").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.date BETWEEN ? AND ?", from, to).
		Group("categories.id, categories.name")
	if userID > 0 {
		query = query.Where("expenses.user_id = ?", userID)
	}
	err := query.Scan(&rows).Error
	return rows, err
}

// ExpensesBetween returns the expense rows for the inclusive range, newest
// first, with category and owner profile attached.
func (r *Repository) ExpensesBetween(userID uint, from, to string) ([]entities.Expense, error) {
	out := []entities.Expense{}
	query := r.db.Preload("Category").Preload("User").
		Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC")
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].User != nil {
			out[i].User.Password = ""
		}
	}
	return out, nil
}
