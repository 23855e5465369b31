package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	APP_ENV     string
	APP_URL     string
	API_URL     string
	CORS_ORIGIN string

	MP_ACCESS_TOKEN   string
	MP_WEBHOOK_SECRET string
	CRON_SECRET       string

	AI_API_URL string
	AI_API_KEY string

	CACHE_HOST string
	CACHE_PORT string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	APP_ENV = getEnv("APP_ENV", "development")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")
	API_URL = getEnv("API_URL", "http://localhost:8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	// Webhook and cron secrets are re-checked at request time: the
	// handlers fail closed with a 500 when they are missing, so boot
	// does not abort on them.
	MP_ACCESS_TOKEN = getEnv("MP_ACCESS_TOKEN", "")
	MP_WEBHOOK_SECRET = getEnv("MP_WEBHOOK_SECRET", "")
	CRON_SECRET = getEnv("CRON_SECRET", "")

	AI_API_URL = getEnv("AI_API_URL", "https://api.openai.com/v1")
	AI_API_KEY = getEnv("AI_API_KEY", "")

	CACHE_HOST = getEnv("CACHE_HOST", "localhost")
	CACHE_PORT = getEnv("CACHE_PORT", "6379")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
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
