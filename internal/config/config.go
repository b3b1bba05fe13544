package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`

	Pricing Pricing
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required"`
}

type Kafka struct {
	GroupID       string   `validate:"required"`
	Brokers       []string `validate:"required,min=1,dive,hostname_port"`
	CheckoutTopic string   `validate:"required"`
	EventsTopic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Pricing carries the billing policy: GST component rates, the subtotal
// above which delivery is free, and the flat delivery fee below it.
type Pricing struct {
	CGSTRate          decimal.Decimal
	SGSTRate          decimal.Decimal
	FreeDeliveryAbove decimal.Decimal
	DeliveryFee       decimal.Decimal
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:       env("KAFKA_GROUP_ID", "storefront-orders"),
			CheckoutTopic: env("KAFKA_CHECKOUT_TOPIC", "checkout"),
			EventsTopic:   env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:       strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Pricing: Pricing{
			CGSTRate:          envDecimal("PRICING_CGST_RATE", "0.09"),
			SGSTRate:          envDecimal("PRICING_SGST_RATE", "0.09"),
			FreeDeliveryAbove: envDecimal("PRICING_FREE_DELIVERY_ABOVE", "500.00"),
			DeliveryFee:       envDecimal("PRICING_DELIVERY_FEE", "50.00"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback string) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}
