package service

import (
	"errors"
	"testing"
)

type memSettings struct {
	values map[string]string
}

func newMemSettings() *memSettings { return &memSettings{values: map[string]string{}} }

func (m *memSettings) Get(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", errors.New("record not found")
	}
	return v, nil
}

func (m *memSettings) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memSettings) SeedDefaults(defaults map[string]string) error {
	for k, v := range defaults {
		if _, ok := m.values[k]; !ok {
			m.values[k] = v
		}
	}
	return nil
}

func TestEnsureDefaultsGeneratesCallbackTokenOnce(t *testing.T) {
	settings := newMemSettings()
	svc := NewGatewayConfigService(settings)

	if err := svc.EnsureDefaults(); err != nil {
		t.Fatal(err)
	}
	token := settings.values[SettingCallbackToken]
	if len(token) != 32 {
		t.Fatalf("token = %q, want 32 hex chars", token)
	}

	if err := svc.EnsureDefaults(); err != nil {
		t.Fatal(err)
	}
	if settings.values[SettingCallbackToken] != token {
		t.Error("callback token was regenerated")
	}
}

func TestEnsureDefaultsKeepsExistingSettings(t *testing.T) {
	settings := newMemSettings()
	settings.values[SettingCurrency] = "EUR"
	svc := NewGatewayConfigService(settings)

	if err := svc.EnsureDefaults(); err != nil {
		t.Fatal(err)
	}
	if settings.values[SettingCurrency] != "EUR" {
		t.Errorf("currency = %s, admin setting overwritten", settings.values[SettingCurrency])
	}
}

func TestLoadSnapshot(t *testing.T) {
	settings := newMemSettings()
	settings.values[SettingPublicKey] = "pub"
	settings.values[SettingPrivateKey] = "priv"
	settings.values[SettingAutocomplete] = "yes"
	settings.values[SettingLocale] = "fr_FR"
	svc := NewGatewayConfigService(settings)

	cfg, err := svc.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PublicKey != "pub" || cfg.PrivateKey != "priv" {
		t.Errorf("keys = %q/%q", cfg.PublicKey, cfg.PrivateKey)
	}
	if !cfg.AutocompleteOrders {
		t.Error("autocomplete flag not mapped")
	}
	if !cfg.Enabled {
		t.Error("missing enabled key should default to enabled")
	}
	if cfg.Currency != "default" {
		t.Errorf("currency = %s", cfg.Currency)
	}
	if cfg.CustomerLang() != "fr" {
		t.Errorf("customer lang = %s", cfg.CustomerLang())
	}

	settings.values[SettingLocale] = "en_US"
	cfg, _ = svc.Load()
	if cfg.CustomerLang() != "en" {
		t.Errorf("customer lang = %s", cfg.CustomerLang())
	}
}
