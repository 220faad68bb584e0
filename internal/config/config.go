package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the gateway
type Config struct {
	Port           string
	Origin         string
	Environment    string
	BackendURL     string
	BackendTimeout time.Duration
	SessionFile    string
	SessionSecret  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	timeoutSeconds, err := strconv.Atoi(getEnv("BACKEND_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT_SECONDS: %w", err)
	}

	sessionFile := getEnv("SESSION_FILE", "")
	if sessionFile == "" {
		sessionFile = defaultSessionFile()
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		Origin:         getEnv("ORIGIN", "http://localhost:5173"),
		Environment:    getEnv("NODE_ENV", "development"),
		BackendURL:     getEnv("BACKEND_URL", "http://127.0.0.1:5000/api"),
		BackendTimeout: time.Duration(timeoutSeconds) * time.Second,
		SessionFile:    sessionFile,
		SessionSecret:  getEnv("SESSION_SECRET", "default_session_secret"),
	}, nil
}

// defaultSessionFile places the persisted session under the user config
// directory, falling back to the working directory when it is unavailable.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.token"
	}
	return filepath.Join(dir, "disease-predictor", "session.token")
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
