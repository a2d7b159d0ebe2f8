package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string

	AccessTokenSecret string
	AccessTokenTTL    time.Duration
	StoreTimeout      time.Duration

	// AdminEmails are granted the admin role at startup.
	AdminEmails []string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "toolhub"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return Config{}, errors.New("ACCESS_TOKEN_SECRET is required")
	}

	brokers := envList("KAFKA_BROKERS")
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,

		AccessTokenSecret: secret,
		AccessTokenTTL:    envDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		StoreTimeout:      envDuration("STORE_TIMEOUT", 5*time.Second),

		AdminEmails: envList("ADMIN_EMAILS"),
	}, nil
}

func envList(name string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(name), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
