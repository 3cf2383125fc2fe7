package entities

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type LedgerType string

const (
	LedgerTypeLend   LedgerType = "LEND"
	LedgerTypeBorrow LedgerType = "BORROW"
)

// Valid reports whether t is one of the two supported ledger directions.
func (t LedgerType) Valid() bool {
	return t == LedgerTypeLend || t == LedgerTypeBorrow
}

// Ledger records money lent to or borrowed from another party.
type Ledger struct {
	ID          string     `gorm:"primaryKey;size:32" json:"id"`
	From        string     `gorm:"size:100;not null" json:"from"`
	To          string     `gorm:"size:100;not null" json:"to"`
	Type        LedgerType `gorm:"size:10;not null" json:"type"`
	Description string     `gorm:"size:255;not null" json:"description"`
	Amount      float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        string     `gorm:"size:10;not null" json:"date"`
	UserID      uint       `gorm:"index" json:"userId"`
	User        *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the timestamp-derived ID the original API exposed.
func (l *Ledger) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = fmt.Sprintf("hisab_%d", time.Now().UnixMilli())
	}
	return nil
}
