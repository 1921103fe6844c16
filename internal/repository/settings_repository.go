package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
)

// SettingsRepository provides data access methods for the app_setting
// table. Values flagged as secret are encrypted at rest with a fernet
// key supplied through configuration.
type SettingsRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewSettingsRepository creates a new SettingsRepository. The fernet key
// is base64 encoded; an empty key disables secret storage.
func NewSettingsRepository(db *sql.DB, fernetKey string) (*SettingsRepository, error) {
	r := &SettingsRepository{db: db}
	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		r.key = key
	}
	return r, nil
}

// GetSetting retrieves a stored setting value and whether it sits
// encrypted at rest.
func (s *SettingsRepository) GetSetting(name string) (string, bool, error) {
	var value string
	var encrypted bool
	err := s.db.QueryRow(`SELECT value, encrypted FROM app_setting WHERE key = ?`, name).Scan(&value, &encrypted)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query app_setting table: %w", err)
	}
	return value, encrypted, nil
}

// SetSetting stores or replaces a plain-text setting value.
func (s *SettingsRepository) SetSetting(name, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_setting (key, value, encrypted, updated_at)
		VALUES (?, ?, 0, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, encrypted = 0, updated_at = excluded.updated_at`,
		name, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store setting: %w", err)
	}
	return nil
}

// GetSecret retrieves and decrypts a secret setting value. A value
// stored in plain text is returned as is.
func (s *SettingsRepository) GetSecret(name string) (string, error) {
	stored, encrypted, err := s.GetSetting(name)
	if err != nil {
		return "", err
	}
	if !encrypted {
		return stored, nil
	}

	if s.key == nil {
		return "", errors.New("secret storage is not configured")
	}
	plain := fernet.VerifyAndDecrypt([]byte(stored), 0, []*fernet.Key{s.key})
	if plain == nil {
		return "", fmt.Errorf("failed to decrypt setting %q", name)
	}
	return string(plain), nil
}

// SetSecret encrypts and stores a secret setting value.
func (s *SettingsRepository) SetSecret(name, value string) error {
	if s.key == nil {
		return errors.New("secret storage is not configured")
	}

	token, err := fernet.EncryptAndSign([]byte(value), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt setting %q: %w", name, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO app_setting (key, value, encrypted, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, encrypted = 1, updated_at = excluded.updated_at`,
		name, string(token), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store setting: %w", err)
	}
	return nil
}
