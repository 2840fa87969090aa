package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// Server
	Port string
	Host string
	Env  string

	// Database. DatabaseURL (Postgres) wins over DBPath (SQLite) when set.
	DBPath      string
	DatabaseURL string

	// Security
	JWTSecret     string
	JWTExpiration time.Duration
	AuthRequired  bool

	// Telegram notifications (optional)
	TelegramBotToken string
	TelegramChatID   int64

	// Course used by the path-parameter create variant when no courseId
	// is supplied.
	DefaultCourseID uint
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env if present
	_ = godotenv.Load()

	config := &Config{
		Port:             getEnv("PORT", "8080"),
		Host:             getEnv("HOST", "0.0.0.0"),
		Env:              getEnv("ENV", "local"),
		DBPath:           getEnv("DB_PATH", "gradebook.db"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", "gradebook_secret_key"),
		JWTExpiration:    24 * time.Hour,
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}

	if expiration, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "24h")); err == nil {
		config.JWTExpiration = expiration
	}

	if required, err := strconv.ParseBool(getEnv("AUTH_REQUIRED", "false")); err == nil {
		config.AuthRequired = required
	}

	if chatID, err := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64); err == nil {
		config.TelegramChatID = chatID
	}

	if courseID, err := strconv.ParseUint(getEnv("DEFAULT_COURSE_ID", "999001"), 10, 32); err == nil {
		config.DefaultCourseID = uint(courseID)
	}

	return config, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
