package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// MockSettingsRepository is an in-memory implementation of SettingsRepository.
type MockSettingsRepository struct {
	settings *models.Settings
	mu       sync.RWMutex
}

// NewMockSettingsRepository creates a new instance of MockSettingsRepository.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

// Get returns the settings row, or ErrNotFound if none was saved yet.
func (r *MockSettingsRepository) Get() (*models.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, fmt.Errorf("settings row: %w", ErrNotFound)
	}
	copied := *r.settings
	return &copied, nil
}

// Save stores the settings row.
func (r *MockSettingsRepository) Save(settings *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	settings.UpdatedAt = time.Now()
	if r.settings == nil {
		settings.CreatedAt = time.Now()
	}
	copied := *settings
	r.settings = &copied
	return nil
}
