package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	FirebaseDBURL          string
	FirebaseAPIKey         string
	JWTSecret              string
	CORSOrigin             string
	ReverseBalanceOnDelete bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	cfg := &Config{
		Port:                   getEnvOrDefault("PORT", "8080"),
		FirebaseDBURL:          strings.TrimRight(os.Getenv("FIREBASE_DB_URL"), "/"),
		FirebaseAPIKey:         os.Getenv("FIREBASE_API_KEY"),
		JWTSecret:              getEnvOrDefault("JWT_SECRET", "expense_tracker_dev_secret"),
		CORSOrigin:             getEnvOrDefault("CORS_ORIGIN", "*"),
		ReverseBalanceOnDelete: strings.EqualFold(os.Getenv("REVERSE_BALANCE_ON_DELETE"), "true"),
	}

	if cfg.FirebaseDBURL == "" {
		return nil, errors.New("FIREBASE_DB_URL is required")
	}
	if cfg.FirebaseAPIKey == "" {
		return nil, errors.New("FIREBASE_API_KEY is required")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
