package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Attendee joins a user to a BBQ. AvailableDates is the subset of the
// BBQ's proposed dates the user can make; it is validated against the
// proposal list when written, not retroactively. Once a date is committed
// the only fact that still matters is whether that date is in here.
type Attendee struct {
	gorm.Model
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BBQID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_bbq_user" json:"bbq_id"`
	BBQ            *BBQ           `json:"bbq,omitempty"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_bbq_user" json:"user_id"`
	User           User           `json:"user"`
	AvailableDates pq.StringArray `gorm:"type:text[]" json:"available_dates"`
	ChosenUpgrades []Upgrade      `gorm:"many2many:attendee_upgrades" json:"chosen_upgrades"`
	Brings         *string        `json:"brings"`
}

func (attendee *Attendee) BeforeCreate(tx *gorm.DB) (err error) {
	if attendee.ID == uuid.Nil {
		attendee.ID = uuid.New()
	}
	return
}

// CanAttendOn reports whether the attendee marked the given moment as
// available. The stored strings are compared as instants, not as text, so
// representations like a fractional-seconds suffix or a +02:00 offset
// still match the committed date they denote.
func (attendee *Attendee) CanAttendOn(date time.Time) bool {
	for _, available := range attendee.AvailableDates {
		t, err := time.Parse(time.RFC3339, available)
		if err != nil {
			continue
		}
		if t.Equal(date) {
			return true
		}
	}
	return false
}
