package service

import (
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// SettingsService handles application settings. Values flagged secret
// are encrypted before hitting the database and come back masked from
// list-style reads.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Setting is one stored setting as exposed over the API. Secret values
// never leave the server; Value is empty for them.
type Setting struct {
	Key    string `json:"key"`
	Value  string `json:"value,omitempty"`
	Secret bool   `json:"secret"`
}

// GetSetting retrieves a setting. Secret values are masked.
func (s *SettingsService) GetSetting(key string) (Setting, error) {
	value, encrypted, err := s.settingsRepo.GetSetting(key)
	if err != nil {
		return Setting{}, err
	}

	setting := Setting{Key: key, Secret: encrypted}
	if !encrypted {
		setting.Value = value
	}
	return setting, nil
}

// SetSetting stores a setting, encrypting it when marked secret.
func (s *SettingsService) SetSetting(key, value string, secret bool) error {
	if secret {
		return s.settingsRepo.SetSecret(key, value)
	}
	return s.settingsRepo.SetSetting(key, value)
}

// RevealSecret returns a secret setting's decrypted value for internal
// callers such as provider clients.
func (s *SettingsService) RevealSecret(key string) (string, error) {
	return s.settingsRepo.GetSecret(key)
}
