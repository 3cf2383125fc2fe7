package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryType string

const (
	EntryTypeFood       EntryType = "food"
	EntryTypeExpense    EntryType = "expense"
	EntryTypeExperience EntryType = "experience"
	EntryTypeHotel      EntryType = "hotel"
	EntryTypeShopping   EntryType = "shopping"
	EntryTypeTransport  EntryType = "transport"
)

// Valid reports whether t is a known tour entry type.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeFood, EntryTypeExpense, EntryTypeExperience,
		EntryTypeHotel, EntryTypeShopping, EntryTypeTransport:
		return true
	}
	return false
}

// Tour is a multi-day trip. TotalCost is maintained by the entries
// repository as the sum of the tour's entry amounts.
type Tour struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	Name      string      `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Location  string      `gorm:"size:255;not null" json:"location"`
	StartDate string      `gorm:"size:10;not null" json:"startDate"`
	EndDate   string      `gorm:"size:10;not null" json:"endDate"`
	TotalCost float64     `gorm:"type:decimal(10,2);default:0" json:"totalCost"`
	IsPublic  bool        `gorm:"default:false" json:"isPublic"`
	Entries   []TourEntry `gorm:"foreignKey:TourID" json:"entries,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (Tour) TableName() string {
	return "tours"
}

// TourEntry is a single expense logged against one day of a tour.
type TourEntry struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Date        string    `gorm:"size:10;not null" json:"date"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Amount      float64   `gorm:"type:decimal(10,2)" json:"amount"`
	Type        EntryType `gorm:"size:20;not null" json:"type"`
	TourID      string    `gorm:"index;size:36" json:"tourId"`
	UserID      uint      `gorm:"index" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e *TourEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (TourEntry) TableName() string {
	return "tour_days"
}

// ShareLink exposes a tour read-only through a short hex code.
// A tour has at most one link; toggling it private clears the code.
type ShareLink struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	IsPublic  bool      `gorm:"default:false" json:"isPublic"`
	Code      string    `gorm:"index;size:12" json:"shareLink"`
	TourID    string    `gorm:"uniqueIndex;size:36;not null" json:"tourId"`
	Tour      *Tour     `gorm:"foreignKey:TourID" json:"tour,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *ShareLink) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (ShareLink) TableName() string {
	return "sharelinks"
}
