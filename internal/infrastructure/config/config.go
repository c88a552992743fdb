package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "coursehub/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Environment              string
	AppBaseURL               string
	FrontendBaseURL          string
	CORSOrigins              []string
	PasswordResetTokenExpiry time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		Environment:              getEnv("APP_ENV", "development"),
		AppBaseURL:               getEnv("APP_BASE_URL", "http://localhost:8080"),
		FrontendBaseURL:          getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		CORSOrigins:              splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		PasswordResetTokenExpiry: time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 15)),
	}
}

// IsProduction reports whether the app runs with production cookie settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetFrontendBaseURL returns the frontend base URL used for payment redirects.
func (c *Config) GetFrontendBaseURL() string {
	return c.FrontendBaseURL
}

// GetCORSOrigins returns the allowed CORS origins. Credentialed cookie auth
// forbids a wildcard here.
func (c *Config) GetCORSOrigins() []string {
	return c.CORSOrigins
}

// GetPasswordResetTokenExpiry returns the expiry duration for reset tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return c.PasswordResetTokenExpiry
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
