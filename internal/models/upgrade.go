package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Upgrade is an optional paid add-on for a BBQ. Amount is in euros and is
// settled at the BBQ itself, so there is no payment flow attached.
type Upgrade struct {
	gorm.Model
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	BBQID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"bbq_id"`
}

func (upgrade *Upgrade) BeforeCreate(tx *gorm.DB) (err error) {
	if upgrade.ID == uuid.Nil {
		upgrade.ID = uuid.New()
	}
	return
}
