// Package ledgers provides database operations for lend/borrow records.
//
// It implements the LedgerStore interface defined in internal/http/stores.go.
package ledgers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spndy/spndy-api/internal/entities"
)

// ErrNotFound is returned when no ledger matches the given ID.
var ErrNotFound = errors.New("ledger not found")

// Repository handles ledger database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new ledgers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLedger inserts a ledger record. The entity's BeforeCreate hook
// assigns the hisab_<millis> ID.
func (r *Repository) CreateLedger(ledger *entities.Ledger) (*entities.Ledger, error) {
	if err := r.db.Create(ledger).Error; err != nil {
		return nil, err
	}
	return ledger, nil
}

// GetLedgersForUser returns the user's ledger records with owner info.
func (r *Repository) GetLedgersForUser(userID uint) ([]entities.Ledger, error) {
	var out []entities.Ledger
	err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	for i := range out {
		scrubUser(&out[i])
	}
	return out, nil
}

// GetLedgerByID returns one ledger scoped to its owner.
func (r *Repository) GetLedgerByID(id string, userID uint) (*entities.Ledger, error) {
	var ledger entities.Ledger
	err := r.db.Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&ledger).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	scrubUser(&ledger)
	return &ledger, nil
}

// UpdateLedger applies the given column values and returns the fresh row.
func (r *Repository) UpdateLedger(id string, userID uint, updates map[string]any) (*entities.Ledger, error) {
	ledger, err := r.GetLedgerByID(id, userID)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(ledger).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetLedgerByID(id, userID)
}

// DeleteLedger removes the user's ledger record.
func (r *Repository) DeleteLedger(id string, userID uint) error {
	if _, err := r.GetLedgerByID(id, userID); err != nil {
		return err
	}
	return r.db.Delete(&entities.Ledger{}, "id = ?", id).Error
}

// scrubUser drops the password record before the row leaves the data layer.
func scrubUser(l *entities.Ledger) {
	if l.User != nil {
		l.User.Password = ""
	}
}
