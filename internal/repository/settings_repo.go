package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type SettingsRepository interface {
	Get(userID string) (*model.UserSettings, error)
	Upsert(settings *model.UserSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

// Get returns the stored settings, or the defaults when the tenant never
// saved any.
func (r *settingsRepo) Get(userID string) (*model.UserSettings, error) {
	var settings model.UserSettings
	err := r.db.First(&settings, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Upsert(settings *model.UserSettings) error {
	var existing model.UserSettings
	err := r.db.First(&existing, "user_id = ?", settings.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	return r.db.Save(settings).Error
}
