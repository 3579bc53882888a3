package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	JWT    JWTConfig
	Sheets SheetsConfig
	Time   TimeConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// SheetsConfig holds the Google Sheets backing store configuration.
// Either CredentialsPath (service account JSON file) or the
// ClientEmail/PrivateKey pair must be provided.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsPath string
	ClientEmail     string
	PrivateKey      string
}

// TimeConfig holds the fixed local offset used for calendar-day math.
// Defaults to +9:00 (JST); never derived from the system locale.
type TimeConfig struct {
	UTCOffsetMinutes int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "30m"),
	}

	// Google Sheets configuration
	config.Sheets = SheetsConfig{
		SpreadsheetID:   getEnv("GOOGLE_SHEETS_SPREADSHEET_ID", ""),
		CredentialsPath: getEnv("GOOGLE_SHEETS_JSON_PATH", ""),
		ClientEmail:     getEnv("GOOGLE_SHEETS_CLIENT_EMAIL", ""),
		PrivateKey:      normalizePrivateKey(getEnv("GOOGLE_SHEETS_PRIVATE_KEY", "")),
	}

	// Local time offset configuration
	offsetMinutes, err := strconv.Atoi(getEnv("UTC_OFFSET_MINUTES", "540"))
	if err != nil {
		return nil, fmt.Errorf("invalid UTC_OFFSET_MINUTES: %w", err)
	}
	config.Time = TimeConfig{
		UTCOffsetMinutes: offsetMinutes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID is required")
	}
	if c.Sheets.CredentialsPath == "" {
		if c.Sheets.ClientEmail == "" || c.Sheets.PrivateKey == "" {
			return fmt.Errorf("GOOGLE_SHEETS_JSON_PATH or GOOGLE_SHEETS_CLIENT_EMAIL and GOOGLE_SHEETS_PRIVATE_KEY are required")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// normalizePrivateKey converts literal \n sequences to real newlines and
// strips surrounding quotes, so the key survives .env round-tripping.
func normalizePrivateKey(key string) string {
	if key == "" {
		return ""
	}
	key = strings.ReplaceAll(key, `\n`, "\n")
	return strings.Trim(key, `"'`)
}
