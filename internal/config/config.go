package config

import (
	"os"
)

// Config holds the application configuration.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	LogLevel  string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/seoulbang.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: jwtSecret,
		LogLevel:  logLevel,
	}
}
