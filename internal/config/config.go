package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For the HTTP timeout duration

	"github.com/joho/godotenv" // For loading .env files
)

// DefaultBaseURL is the backend origin the app ships with. Every endpoint is
// a PHP script under this origin.
const DefaultBaseURL = "https://test.veloboom.net/"

// Config holds the application configuration
type Config struct {
	BaseURL     string        // Backend base URL
	PrefsPath   string        // Path of the local preference database file
	HTTPTimeout time.Duration // Transport timeout for one request attempt
	IsProd      bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	timeoutSec, _ := strconv.Atoi(os.Getenv("HTTP_TIMEOUT_SECONDS"))
	if timeoutSec <= 0 {
		timeoutSec = 15 // Default transport timeout
	}
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL // Compiled-in backend origin
	}
	prefsPath := os.Getenv("PREFS_PATH")
	if prefsPath == "" {
		prefsPath = "schoolhub.db" // Local preference store file
	}
	return &Config{
		BaseURL:     baseURL,                                 // Backend base URL
		PrefsPath:   prefsPath,                               // Preference store path
		HTTPTimeout: time.Duration(timeoutSec) * time.Second, // Request timeout
		IsProd:      os.Getenv("IS_PROD") == "true",          // Is production environment
	}
}
