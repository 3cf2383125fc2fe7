// Package entries provides database operations for per-day tour entries.
//
// It implements the EntryStore interface defined in internal/http/stores.go.
// Every mutation recomputes the owning tour's total cost from the sum of its
// entry amounts, so tours.TotalCost never drifts from the entry rows.
package entries

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spndy/spndy-api/internal/entities"
)

// ErrNotFound is returned when no entry matches the given ID.
var ErrNotFound = errors.New("entry not found")

// Repository handles tour entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new entries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateEntry inserts an entry and refreshes the tour's total cost.
func (r *Repository) CreateEntry(entry *entities.TourEntry) (*entities.TourEntry, error) {
	if err := r.db.Create(entry).Error; err != nil {
		return nil, err
	}
	if err := r.recomputeTotalCost(entry.TourID); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntryByID returns a single entry.
func (r *Repository) GetEntryByID(id string) (*entities.TourEntry, error) {
	var entry entities.TourEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry applies the given column values, refreshes the tour total and
// returns the fresh row.
func (r *Repository) UpdateEntry(id string, updates map[string]any) (*entities.TourEntry, error) {
	entry, err := r.GetEntryByID(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(entry).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := r.recomputeTotalCost(entry.TourID); err != nil {
		return nil, err
	}
	return r.GetEntryByID(id)
}

// DeleteEntry removes an entry and refreshes the tour total.
func (r *Repository) DeleteEntry(id string) error {
	entry, err := r.GetEntryByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&entities.TourEntry{}, "id = ?", id).Error; err != nil {
		return err
	}
	return r.recomputeTotalCost(entry.TourID)
}

// recomputeTotalCost writes SUM(amount) over the tour's entries back to the
// tour row. The database does the arithmetic.
func (r *Repository) recomputeTotalCost(tourID string) error {
	if tourID == "" {
		return nil
	}
	var total float64
	err := r.db.Model(&entities.TourEntry{}).
		Where("tour_id = ?", tourID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return r.db.Model(&entities.Tour{}).Where("id = ?", tourID).Update("total_cost", total).Error
}
