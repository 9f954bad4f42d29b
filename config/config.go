package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	// APP_URL is the marketing site's base URL, used for checkout
	// success/cancel redirects when the request carries no Origin header.
	APP_URL string

	STRIPE_SECRET_KEY      string
	STRIPE_PUBLISHABLE_KEY string

	// STRIPE_WEBHOOK_SECRET may be empty; webhook signature verification
	// then rejects every delivery instead of crashing the process.
	STRIPE_WEBHOOK_SECRET string

	PRICE_ID_BASIC      string
	PRICE_ID_PRO        string
	PRICE_ID_ENTERPRISE string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
	APP_URL = getEnv("APP_URL", "http://localhost:3000")

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_PUBLISHABLE_KEY = getEnv("STRIPE_PUBLISHABLE_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")

	PRICE_ID_BASIC = getEnv("PRICE_ID_BASIC", "")
	PRICE_ID_PRO = getEnv("PRICE_ID_PRO", "")
	PRICE_ID_ENTERPRISE = getEnv("PRICE_ID_ENTERPRISE", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
