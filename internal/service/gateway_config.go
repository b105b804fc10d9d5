package service

import (
	"fmt"
	"strings"

	"coolpay/internal/domain"

	"github.com/google/uuid"
)

// Setting keys for the gateway configuration store.
const (
	SettingEnabled        = "enabled"
	SettingPublicKey      = "public_key"
	SettingPrivateKey     = "private_key"
	SettingCallbackToken  = "callback_token"
	SettingCurrency       = "currency"
	SettingAutocomplete   = "autocomplete_orders"
	SettingPaymentMethods = "payment_methods"
	SettingLocale         = "locale"
	SettingDescription    = "description"
)

// GatewayConfig is an immutable snapshot of the gateway settings, built once
// per request so admin changes between requests never tear a single request's
// view.
type GatewayConfig struct {
	Enabled            bool
	PublicKey          string
	PrivateKey         string
	CallbackToken      string
	Currency           string
	AutocompleteOrders bool
	PaymentMethods     string
	Locale             string
	Description        string
}

// CustomerLang maps the configured locale onto the two languages the provider
// payment page supports.
func (c *GatewayConfig) CustomerLang() string {
	if strings.HasPrefix(c.Locale, "fr") {
		return "fr"
	}
	return "en"
}

// SettingStore is the slice of the settings repository this service needs.
type SettingStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	SeedDefaults(defaults map[string]string) error
}

type GatewayConfigService struct {
	settings SettingStore
}

func NewGatewayConfigService(settings SettingStore) *GatewayConfigService {
	return &GatewayConfigService{settings: settings}
}

// EnsureDefaults seeds missing settings and generates the callback token
// exactly once. The token is a random path segment; it is persisted and never
// regenerated so the URL registered at the provider stays valid for the
// gateway's lifetime.
func (s *GatewayConfigService) EnsureDefaults() error {
	if err := s.settings.SeedDefaults(map[string]string{
		SettingEnabled:        "yes",
		SettingCurrency:       "default",
		SettingAutocomplete:   "no",
		SettingPaymentMethods: domain.PaymentMethodsAll,
		SettingLocale:         "en",
		SettingDescription:    "Pay safely using Orange Money, MTN Mobile Money, VISA, MasterCard or My-CoolPay Wallet",
	}); err != nil {
		return fmt.Errorf("seed gateway defaults: %w", err)
	}
	if token, _ := s.settings.Get(SettingCallbackToken); token != "" {
		return nil
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := s.settings.Set(SettingCallbackToken, token); err != nil {
		return fmt.Errorf("persist callback token: %w", err)
	}
	return nil
}

// Load builds a typed snapshot of the current settings. Missing optional keys
// fall back to their defaults; keys are returned empty when unset so callers
// can refuse to operate on an unconfigured gateway.
func (s *GatewayConfigService) Load() (*GatewayConfig, error) {
	get := func(key, fallback string) string {
		v, err := s.settings.Get(key)
		if err != nil || v == "" {
			return fallback
		}
		return v
	}
	return &GatewayConfig{
		Enabled:            get(SettingEnabled, "yes") == "yes",
		PublicKey:          get(SettingPublicKey, ""),
		PrivateKey:         get(SettingPrivateKey, ""),
		CallbackToken:      get(SettingCallbackToken, ""),
		Currency:           get(SettingCurrency, "default"),
		AutocompleteOrders: get(SettingAutocomplete, "no") == "yes",
		PaymentMethods:     get(SettingPaymentMethods, domain.PaymentMethodsAll),
		Locale:             get(SettingLocale, "en"),
		Description:        get(SettingDescription, ""),
	}, nil
}
