package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
)

// SettingsService reads and writes the single store settings document.
// Missing sections are lazily filled with defaults on first read: fetch the
// row, detect the absent section key, patch the default in and persist it
// back, creating the row itself if none exists at all. The same routine
// serves every section; sections only differ by key and default value.
type SettingsService struct {
	repo repositories.SettingsRepository
	mu   sync.Mutex // serializes read-modify-write migrations
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// EnsureSection returns the named section of the settings document, creating
// the document and/or the section from the given default when absent. The
// section is decoded into out, which must be a pointer.
func (s *SettingsService) EnsureSection(key string, defaultValue any, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.repo.Get()
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = &models.Settings{Data: map[string]any{}}
	}
	if settings.Data == nil {
		settings.Data = map[string]any{}
	}

	section, ok := settings.Data[key]
	if !ok {
		section, err = toPlain(defaultValue)
		if err != nil {
			return fmt.Errorf("failed to encode default for section %s: %w", key, err)
		}
		settings.Data[key] = section
		if err := s.repo.Save(settings); err != nil {
			return fmt.Errorf("failed to persist default section %s: %w", key, err)
		}
	}

	return decodeSection(section, out)
}

// DeliverySettings returns the delivery configuration section.
func (s *SettingsService) DeliverySettings() (models.DeliverySettings, error) {
	var ds models.DeliverySettings
	err := s.EnsureSection(models.SectionDelivery, models.DefaultDeliverySettings(), &ds)
	return ds, err
}

// SupportSettings returns the support configuration section.
func (s *SettingsService) SupportSettings() (models.SupportSettings, error) {
	var ss models.SupportSettings
	err := s.EnsureSection(models.SectionSupport, models.DefaultSupportSettings(), &ss)
	return ss, err
}

// Document returns the full settings document with all known sections
// present, creating the row with defaults if the table is empty.
func (s *SettingsService) Document() (*models.Settings, error) {
	if _, err := s.DeliverySettings(); err != nil {
		return nil, err
	}
	if _, err := s.SupportSettings(); err != nil {
		return nil, err
	}
	return s.repo.Get()
}

// AdminWrite replaces the whole settings document with the given data,
// creating the row if none exists (read-then-insert-or-update).
func (s *SettingsService) AdminWrite(data map[string]any) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.repo.Get()
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = &models.Settings{}
	}
	settings.Data = data
	if err := s.repo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// toPlain converts a typed default into the plain map/slice form the
// document stores, so stored sections and fresh defaults share one shape.
func toPlain(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var plain any
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}

func decodeSection(section any, out any) error {
	raw, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("failed to encode settings section: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode settings section: %w", err)
	}
	return nil
}
