package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BBQ is a single barbecue occasion being planned. ProposedDates holds
// RFC3339 timestamps offered to attendees; Date stays nil until the admin
// picks one of them.
type BBQ struct {
	gorm.Model
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Slug          string         `gorm:"unique;not null" json:"slug"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `gorm:"not null" json:"description"`
	ProposedDates pq.StringArray `gorm:"type:text[]" json:"proposed_dates"`
	Date          *time.Time     `json:"date"`
	Upgrades      []Upgrade      `gorm:"constraint:OnDelete:CASCADE" json:"upgrades"`
	Attendees     []Attendee     `gorm:"constraint:OnDelete:CASCADE" json:"attendees,omitempty"`
}

func (bbq *BBQ) BeforeCreate(tx *gorm.DB) (err error) {
	if bbq.ID == uuid.Nil {
		bbq.ID = uuid.New()
	}
	return
}

// HasProposedDate reports whether date is one of the proposed dates.
func (bbq *BBQ) HasProposedDate(date string) bool {
	for _, proposed := range bbq.ProposedDates {
		if proposed == date {
			return true
		}
	}
	return false
}
