package config

import (
	"os"
	"strings"
)

// AppConfig holds environment driven configuration values.
type AppConfig struct {
	Port        string
	DatabaseURL string // Postgres DSN; empty means the local SQLite file is used
	SQLitePath  string
	DevMode     bool // drop and recreate the schema on every startup, then reseed
	LogLevel    string
	LogPath     string
	TemplateDir string
	StaticDir   string
}

// Load reads the application configuration from environment variables.
// It should be called once during boot, after godotenv has run.
func Load() AppConfig {
	return AppConfig{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenv("SQLITE_PATH", "news.db"),
		DevMode:     parseBool(os.Getenv("DEV_MODE")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogPath:     os.Getenv("LOG_PATH"),
		TemplateDir: getenv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:   getenv("STATIC_DIR", "./web/static"),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
