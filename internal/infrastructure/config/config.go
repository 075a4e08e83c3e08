package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"

	defaultPort           = 8080
	defaultGatewayTimeout = 15 * time.Second
	defaultStoreDriver    = StoreDriverDynamoDB
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// Config holds the provider options and the host store settings.
//
// Provider options mirror the plugin options of the storefront platform:
//   - access_token     (MERCADOPAGO_ACCESS_TOKEN)
//   - store_url        (STORE_URL)
//   - webhook_url      (WEBHOOK_URL) base of the notification url
//   - success_backurl  (SUCCESS_BACKURL) base of the success return url
type Config struct {
	AccessToken    string
	StoreURL       string `validate:"omitempty,url"`
	WebhookURL     string `validate:"required,url"`
	SuccessBackURL string `validate:"required,url"`
	WebhookSecret  string
	GatewayTimeout time.Duration `validate:"gt=0"`
	GatewayMock    bool

	StoreDriver string `validate:"oneof=dynamodb postgres"`
	DatabaseURL string `validate:"required_if=StoreDriver postgres"`

	Port     int `validate:"gt=0,lte=65535"`
	AppEnv   string
	LogLevel string
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		AccessToken:    strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		StoreURL:       strings.TrimSpace(os.Getenv("STORE_URL")),
		WebhookURL:     strings.TrimRight(strings.TrimSpace(os.Getenv("WEBHOOK_URL")), "/"),
		SuccessBackURL: strings.TrimRight(strings.TrimSpace(os.Getenv("SUCCESS_BACKURL")), "/"),
		WebhookSecret:  strings.TrimSpace(os.Getenv("MERCADOPAGO_WEBHOOK_SECRET")),
		GatewayTimeout: defaultGatewayTimeout,
		GatewayMock:    IsPaymentGatewayMockEnabled(),
		StoreDriver:    strings.ToLower(getenvDefault("STORE_DRIVER", defaultStoreDriver)),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:           defaultPort,
		AppEnv:         os.Getenv("APP_ENV"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}

	if v := strings.TrimSpace(os.Getenv("MERCADOPAGO_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MERCADOPAGO_TIMEOUT: %w", err)
		}
		cfg.GatewayTimeout = d
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !c.GatewayMock && c.AccessToken == "" {
		return ErrMissingMercadoPagoAccessToken
	}
	return validator.New().Struct(c)
}

// IsPaymentGatewayMockEnabled reports whether the gateway runs without calling Mercado Pago.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
