// Package categories provides database operations for expense categories.
//
// It implements the CategoryStore interface defined in internal/http/stores.go.
package categories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spndy/spndy-api/internal/entities"
)

var (
	// ErrNotFound is returned when no category matches the given ID.
	ErrNotFound = errors.New("category not found")
	// ErrNameTaken is returned when another category already uses the name.
	ErrNameTaken = errors.New("category name already exists")
	// ErrInUse is returned when deletion is blocked by referencing expenses.
	ErrInUse = errors.New("category is linked to existing expenses")
)

// Repository handles category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateCategory inserts a category, rejecting duplicate names.
func (r *Repository) CreateCategory(name string) (*entities.Category, error) {
	var existing entities.Category
	err := r.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &entities.Category{Name: name}
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// GetAllCategories returns every category.
func (r *Repository) GetAllCategories() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// GetCategoryByID returns a single category.
func (r *Repository) GetCategoryByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category, rejecting names held by other rows.
func (r *Repository) UpdateCategory(id uint, name string) (*entities.Category, error) {
	category, err := r.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	var other entities.Category
	err = r.db.Where("name = ? AND id <> ?", name, id).First(&other).Error
	if err == nil {
		return nil, ErrNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Model(category).Update("name", name).Error; err != nil {
		return nil, err
	}
	category.Name = name
	return category, nil
}

// DeleteCategory removes a category unless expenses still reference it.
func (r *Repository) DeleteCategory(id uint) error {
	if _, err := r.GetCategoryByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.db.Model(&entities.Expense{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrInUse
	}

	return r.db.Delete(&entities.Category{}, id).Error
}
