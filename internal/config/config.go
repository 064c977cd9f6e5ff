package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Backend      BackendConfig
	OAuth2Google OAuth2GoogleConfig
	Admin        AdminConfig
	CORS         CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// BackendConfig points at the Apps Script deployment that owns all data.
// BaseURL may be empty; requests then fail individually with missing_backend_url.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type OAuth2GoogleConfig struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	Scopes        []string
	VerifyIDToken bool
}

// RedirectFlowEnabled reports whether the OAuth2 code flow can be offered.
func (c OAuth2GoogleConfig) RedirectFlowEnabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURL != ""
}

// AdminConfig holds the optional dashboard gate.
type AdminConfig struct {
	PasswordHash string
	JWTSecret    string
	SessionTTL   string
}

// Enabled reports whether the dashboard requires a login.
func (c AdminConfig) Enabled() bool {
	return c.PasswordHash != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("Error loading .env file:", err)
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

	// Backend configuration, the private name wins over the public one
	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	config.Backend = BackendConfig{
		BaseURL: firstEnv("APPS_SCRIPT_URL", "NEXT_PUBLIC_APPS_SCRIPT_URL"),
		Timeout: timeout,
	}

	// OAuth2 Google Configuration
	verify, err := strconv.ParseBool(getEnv("VERIFY_ID_TOKEN", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid VERIFY_ID_TOKEN: %w", err)
	}
	scopes := getEnvSlice("GOOGLE_SCOPES")
	if len(scopes) == 0 {
		scopes = []string{"openid", "email", "profile"}
	}
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:      firstEnv("GOOGLE_CLIENT_ID", "NEXT_PUBLIC_GOOGLE_CLIENT_ID"),
		ClientSecret:  getEnv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:   getEnv("GOOGLE_REDIRECT_URL", ""),
		Scopes:        scopes,
		VerifyIDToken: verify,
	}

	// Admin gate configuration
	config.Admin = AdminConfig{
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:    getEnv("JWT_SECRET_KEY", ""),
		SessionTTL:   getEnv("ADMIN_SESSION_TTL", "12h"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Admin.Enabled() && c.Admin.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required when ADMIN_PASSWORD_HASH is set")
	}
	if c.Admin.Enabled() {
		if _, err := time.ParseDuration(c.Admin.SessionTTL); err != nil {
			return fmt.Errorf("invalid ADMIN_SESSION_TTL: %w", err)
		}
	}
	if c.OAuth2Google.RedirectURL != "" && c.OAuth2Google.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_SECRET is required when GOOGLE_REDIRECT_URL is set")
	}
	if c.OAuth2Google.VerifyIDToken && c.OAuth2Google.ClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is required when VERIFY_ID_TOKEN is enabled")
	}
	return nil
}

// IsProduction reports whether cookies should be marked Secure.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
