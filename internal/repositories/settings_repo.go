package repositories

import (
	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// SettingsRepository defines access to the single settings document row.
type SettingsRepository interface {
	// Get returns the settings row, or ErrNotFound if none exists yet.
	Get() (*models.Settings, error)
	// Save inserts the row if absent, otherwise overwrites it.
	Save(settings *models.Settings) error
}
