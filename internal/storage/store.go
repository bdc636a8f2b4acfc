package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Kas-Kady/bbq/internal/models"
	"github.com/Kas-Kady/bbq/internal/planner"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore implements planner.Store on top of the application database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetBBQ(ctx context.Context, slug string) (*models.BBQ, error) {
	var bbq models.BBQ
	err := s.db.WithContext(ctx).
		Preload("Upgrades").
		Preload("Attendees.User").
		Preload("Attendees.ChosenUpgrades").
		Where("slug = ?", slug).
		First(&bbq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, planner.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bbq, nil
}

// SetDate writes the committed date as a single UPDATE keyed by id, so
// concurrent commits serialize at the database and the last write wins.
func (s *GormStore) SetDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	return s.db.WithContext(ctx).
		Model(&models.BBQ{}).
		Where("id = ?", id).
		Update("date", date).Error
}
