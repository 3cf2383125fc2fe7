// Package tours provides database operations for tours and their share links.
//
// It implements the TourStore interface defined in internal/http/stores.go.
package tours

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	"github.com/spndy/spndy-api/internal/entities"
)

var (
	// ErrNotFound is returned when no tour matches the given ID.
	ErrNotFound = errors.New("tour not found")
	// ErrNameTaken is returned when a tour with the name already exists.
	ErrNameTaken = errors.New("tour name already exists")
	// ErrHasEntries is returned when deletion is blocked by linked entries.
	ErrHasEntries = errors.New("tour has linked entries")
	// ErrLinkNotFound is returned when no public share link matches a code.
	ErrLinkNotFound = errors.New("share link not found")
)

// shareCodeLength is the hex-code length exposed in shared tour URLs.
const shareCodeLength = 6

// Repository handles tour and share-link database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tours repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateTour inserts a tour, rejecting duplicate names.
func (r *Repository) CreateTour(tour *entities.Tour) (*entities.Tour, error) {
	var existing entities.Tour
	err := r.db.Where("name = ?", tour.Name).First(&existing).Error
	if err == nil {
		return nil, ErrNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(tour).Error; err != nil {
		return nil, err
	}
	return tour, nil
}

// GetAllTours returns every tour with entries, most recent trips first.
func (r *Repository) GetAllTours() ([]entities.Tour, error) {
	var tours []entities.Tour
	err := r.db.Preload("Entries").Order("end_date DESC").Find(&tours).Error
	return tours, err
}

// GetTourByID returns a single tour without entries.
func (r *Repository) GetTourByID(id string) (*entities.Tour, error) {
	var tour entities.Tour
	err := r.db.First(&tour, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tour, nil
}

// UpdateTour applies the given column values and returns the fresh row.
func (r *Repository) UpdateTour(id string, updates map[string]any) (*entities.Tour, error) {
	tour, err := r.GetTourByID(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(tour).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetTourByID(id)
}

// DeleteTour removes a tour unless entries still reference it.
func (r *Repository) DeleteTour(id string) error {
	if _, err := r.GetTourByID(id); err != nil {
		return err
	}

	var count int64
	if err := r.db.Model(&entities.TourEntry{}).Where("tour_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrHasEntries
	}

	return r.db.Delete(&entities.Tour{}, "id = ?", id).Error
}

// SetShareLink upserts the tour's share link. Making a tour public mints a
// fresh hex code; making it private clears the code so old URLs stop working.
func (r *Repository) SetShareLink(tourID string, isPublic bool) (*entities.ShareLink, error) {
	if _, err := r.GetTourByID(tourID); err != nil {
		return nil, err
	}

	code := ""
	if isPublic {
		c, err := generateShareCode(shareCodeLength)
		if err != nil {
			return nil, err
		}
		code = c
	}

	var link entities.ShareLink
	err := r.db.Where("tour_id = ?", tourID).First(&link).Error
	switch {
	case err == nil:
		updates := map[string]any{"is_public": isPublic, "code": code}
		if err := r.db.Model(&link).Updates(updates).Error; err != nil {
			return nil, err
		}
		link.IsPublic = isPublic
		link.Code = code
	case errors.Is(err, gorm.ErrRecordNotFound):
		link = entities.ShareLink{TourID: tourID, IsPublic: isPublic, Code: code}
		if err := r.db.Create(&link).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := r.db.Model(&entities.Tour{}).Where("id = ?", tourID).Update("is_public", isPublic).Error; err != nil {
		return nil, err
	}

	return &link, nil
}

// GetTourByShareCode resolves a public share code to its tour with entries.
func (r *Repository) GetTourByShareCode(code string) (*entities.Tour, error) {
	var link entities.ShareLink
	err := r.db.Where("code = ? AND is_public = ?", code, true).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	var tour entities.Tour
	err = r.db.Preload("Entries").First(&tour, "id = ?", link.TourID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tour, nil
}

func generateShareCode(length int) (string, error) {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
