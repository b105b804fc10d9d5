package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CoolPay  CoolPayConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

// CoolPayConfig covers the outbound provider call and the inbound callback
// gate. InsecureSkipVerify exists only for legacy self-signed provider setups;
// certificate verification stays on by default.
type CoolPayConfig struct {
	BaseURL            string
	ProviderIP         string
	RequestTimeout     time.Duration
	InsecureSkipVerify bool
}

// RedisConfig is optional; an empty Addr disables the callback replay cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig is optional; an empty broker list disables event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getenv("PORT", "8080"),
			Env:         getenv("APP_ENV", "development"),
			ReadTimeout: 10 * time.Second,
			// Checkout blocks on the provider for up to CoolPay.RequestTimeout,
			// so the write timeout must sit above it.
			WriteTimeout: 45 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "coolpay:coolpay@tcp(localhost:3306)/coolpay?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret: getenv("JWT_SECRET", "change-me-in-production"),
			AccessExpiry: 15 * time.Minute,
			Issuer:       "coolpay",
		},
		CoolPay: CoolPayConfig{
			BaseURL:            getenv("COOLPAY_BASE_URL", "https://my-coolpay.com/api"),
			ProviderIP:         getenv("COOLPAY_PROVIDER_IP", "15.236.140.89"),
			RequestTimeout:     30 * time.Second,
			InsecureSkipVerify: getenvBool("COOLPAY_INSECURE_SKIP_VERIFY", false),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", ""),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(getenv("KAFKA_BROKERS", "")),
			Topic:   getenv("KAFKA_TOPIC", "payment_events"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
