package service_test

import (
	"errors"
	"testing"

	"github.com/fernet/fernet-go"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/repository"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/testutil"
)

func newSettingsService(t *testing.T, withKey bool) *service.SettingsService {
	t.Helper()
	db := testutil.SetupTestDB(t)

	encoded := ""
	if withKey {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("Failed to generate fernet key: %v", err)
		}
		encoded = key.Encode()
	}

	repo, err := repository.NewSettingsRepository(db, encoded)
	if err != nil {
		t.Fatalf("Failed to create settings repository: %v", err)
	}
	return service.NewSettingsService(repo)
}

// TestSettingsService_PlainSettings tests plain key-value settings.
//
// WHY: Settings back user preferences like the display currency; a
// stored value must read back verbatim and overwrites must win.
func TestSettingsService_PlainSettings(t *testing.T) {
	t.Run("stores and retrieves a value", func(t *testing.T) {
		svc := newSettingsService(t, false)

		if err := svc.SetSetting("displayCurrency", "USD", false); err != nil {
			t.Fatalf("SetSetting() returned unexpected error: %v", err)
		}

		setting, err := svc.GetSetting("displayCurrency")
		if err != nil {
			t.Fatalf("GetSetting() returned unexpected error: %v", err)
		}
		if setting.Value != "USD" {
			t.Errorf("Expected 'USD', got %q", setting.Value)
		}
		if setting.Secret {
			t.Error("Expected a plain setting, got secret")
		}
	})

	t.Run("overwrites an existing value", func(t *testing.T) {
		svc := newSettingsService(t, false)

		if err := svc.SetSetting("displayCurrency", "USD", false); err != nil {
			t.Fatalf("SetSetting() returned unexpected error: %v", err)
		}
		if err := svc.SetSetting("displayCurrency", "CHF", false); err != nil {
			t.Fatalf("SetSetting() returned unexpected error: %v", err)
		}

		setting, err := svc.GetSetting("displayCurrency")
		if err != nil {
			t.Fatalf("GetSetting() returned unexpected error: %v", err)
		}
		if setting.Value != "CHF" {
			t.Errorf("Expected 'CHF', got %q", setting.Value)
		}
	})

	t.Run("returns not found for unknown key", func(t *testing.T) {
		svc := newSettingsService(t, false)

		_, err := svc.GetSetting("missing")
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			t.Errorf("Expected ErrSettingNotFound, got %v", err)
		}
	})
}

// TestSettingsService_Secrets tests encrypted settings.
//
// WHY: Provider credentials must never be readable from the database
// or the API; only the internal reveal path decrypts them.
func TestSettingsService_Secrets(t *testing.T) {
	t.Run("masks secret values on read", func(t *testing.T) {
		svc := newSettingsService(t, true)

		if err := svc.SetSetting("apiToken", "hunter2", true); err != nil {
			t.Fatalf("SetSetting() returned unexpected error: %v", err)
		}

		setting, err := svc.GetSetting("apiToken")
		if err != nil {
			t.Fatalf("GetSetting() returned unexpected error: %v", err)
		}
		if !setting.Secret {
			t.Error("Expected the setting to be flagged secret")
		}
		if setting.Value != "" {
			t.Errorf("Expected masked value, got %q", setting.Value)
		}
	})

	t.Run("reveals the decrypted value internally", func(t *testing.T) {
		svc := newSettingsService(t, true)

		if err := svc.SetSetting("apiToken", "hunter2", true); err != nil {
			t.Fatalf("SetSetting() returned unexpected error: %v", err)
		}

		value, err := svc.RevealSecret("apiToken")
		if err != nil {
			t.Fatalf("RevealSecret() returned unexpected error: %v", err)
		}
		if value != "hunter2" {
			t.Errorf("Expected decrypted 'hunter2', got %q", value)
		}
	})

	t.Run("rejects secrets when no key is configured", func(t *testing.T) {
		svc := newSettingsService(t, false)

		if err := svc.SetSetting("apiToken", "hunter2", true); err == nil {
			t.Error("Expected error storing a secret without a key, got nil")
		}
	})
}
