package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port             string
	DatabaseURL      string
	ZapierWebhookURL string
	SquareToken      string
	SquareAPIURL     string
	AMQPURL          string
}

// Load reads configuration from the environment. DATABASE_URL is the
// only required setting; the webhook endpoint, the Square credential and
// the queue URL are optional and gate their integrations when absent.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return &Config{
		Port:             getEnv("PORT", "3000"),
		DatabaseURL:      dbURL,
		ZapierWebhookURL: os.Getenv("ZAPIER_WEBHOOK_URL"),
		SquareToken:      os.Getenv("SQUARE_ACCESS_TOKEN"),
		SquareAPIURL:     getEnv("SQUARE_API_URL", "https://connect.squareup.com"),
		AMQPURL:          os.Getenv("AMQP_URL"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
