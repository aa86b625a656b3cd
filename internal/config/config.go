package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Server
	HTTPPort int
	BaseURL  string

	// Session
	SessionSecret string
	SessionTTL    time.Duration

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Outbound mail relay (public contact form)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	ContactInbox string

	// Payment simulation API
	PaymentAPIURL  string
	PaymentAPIKey  string
	PaymentTimeout time.Duration

	// Storage
	ImageStoragePath string

	// Logging
	LogLevel string

	// Security
	AllowedOrigins string
	AppEnv         string

	// Rate Limiting
	RateLimitRequests float64
	RateLimitBurst    int
}

// Load reads configuration from environment variables. A .env file in the
// working directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Required: DATABASE_URL
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	// Required: SESSION_SECRET
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required but not set")
	}

	// HTTP_PORT (default: 8080)
	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		cfg.HTTPPort = 8080
	} else {
		port, err := strconv.Atoi(httpPort)
		if err != nil {
			return nil, fmt.Errorf("HTTP_PORT must be a valid integer: %w", err)
		}
		cfg.HTTPPort = port
	}

	// BASE_URL (default derived from port)
	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTPPort)
	}

	// SESSION_TTL_HOURS (default: 24)
	if ttl := os.Getenv("SESSION_TTL_HOURS"); ttl != "" {
		hours, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTL_HOURS must be a valid integer: %w", err)
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	} else {
		cfg.SessionTTL = 24 * time.Hour
	}

	// Google OAuth
	cfg.GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = os.Getenv("GOOGLE_REDIRECT_URL")
	if cfg.GoogleRedirectURL == "" {
		cfg.GoogleRedirectURL = cfg.BaseURL + "/auth/google/callback"
	}

	// Outbound mail relay
	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if smtpPort := os.Getenv("SMTP_PORT"); smtpPort != "" {
		port, err := strconv.Atoi(smtpPort)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT must be a valid integer: %w", err)
		}
		cfg.SMTPPort = port
	} else {
		cfg.SMTPPort = 587
	}
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.ContactInbox = os.Getenv("CONTACT_INBOX")
	if cfg.ContactInbox == "" {
		cfg.ContactInbox = cfg.SMTPUsername
	}

	// Payment API
	cfg.PaymentAPIURL = os.Getenv("PAYMENT_API_URL")
	cfg.PaymentAPIKey = os.Getenv("PAYMENT_API_KEY")
	if timeout := os.Getenv("PAYMENT_TIMEOUT_SECONDS"); timeout != "" {
		secs, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("PAYMENT_TIMEOUT_SECONDS must be a valid integer: %w", err)
		}
		cfg.PaymentTimeout = time.Duration(secs) * time.Second
	} else {
		cfg.PaymentTimeout = 10 * time.Second
	}

	// IMAGE_STORAGE_PATH (default: ./images)
	cfg.ImageStoragePath = os.Getenv("IMAGE_STORAGE_PATH")
	if cfg.ImageStoragePath == "" {
		cfg.ImageStoragePath = "./images"
	}

	// LOG_LEVEL (default: info)
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Security configuration
	cfg.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	cfg.AppEnv = os.Getenv("APP_ENV")
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	// Rate limiting configuration
	if rps := os.Getenv("RATE_LIMIT_REQUESTS"); rps != "" {
		if v, err := strconv.ParseFloat(rps, 64); err == nil {
			cfg.RateLimitRequests = v
		}
	} else {
		cfg.RateLimitRequests = 10.0
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if v, err := strconv.Atoi(burst); err == nil {
			cfg.RateLimitBurst = v
		}
	} else {
		cfg.RateLimitBurst = 20
	}

	return cfg, nil
}

// LoadWithValidation loads and validates configuration, failing fast on errors
func LoadWithValidation() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Production-specific validation
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProduction(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DatabaseURL cannot be empty")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTPPort must be between 1 and 65535")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("SessionSecret must be at least 32 characters")
	}
	// The session secret must be independent of the database credential.
	if pw := databasePassword(c.DatabaseURL); pw != "" && pw == c.SessionSecret {
		return fmt.Errorf("SessionSecret must not reuse the database password")
	}
	if c.ImageStoragePath == "" {
		return fmt.Errorf("ImageStoragePath cannot be empty")
	}
	return nil
}

// ValidateProduction performs additional validation for production environment
func (c *Config) ValidateProduction() error {
	if c.GoogleClientID == "" || c.GoogleClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required in production")
	}

	if c.AllowedOrigins == "" {
		return fmt.Errorf("ALLOWED_ORIGINS is required in production")
	}

	// Check for wildcard in production
	if strings.Contains(c.AllowedOrigins, "*") {
		return fmt.Errorf("wildcard (*) origins are not allowed in production")
	}

	// Check for sslmode=disable in database URL
	if strings.Contains(c.DatabaseURL, "sslmode=disable") {
		return fmt.Errorf("sslmode=disable is not allowed in production")
	}

	return nil
}

// databasePassword extracts the password component from a database URL, or ""
// if none is present or the URL does not parse.
func databasePassword(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.User == nil {
		return ""
	}
	pw, _ := u.User.Password()
	return pw
}

// LogConfig logs configuration values (excluding secrets)
func (c *Config) LogConfig(logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.Int("http_port", c.HTTPPort),
		slog.String("base_url", c.BaseURL),
		slog.Duration("session_ttl", c.SessionTTL),
		slog.String("image_storage_path", c.ImageStoragePath),
		slog.String("log_level", c.LogLevel),
		slog.String("app_env", c.AppEnv),
		slog.Bool("google_oauth_configured", c.GoogleClientID != "" && c.GoogleClientSecret != ""),
		slog.Bool("smtp_configured", c.SMTPHost != ""),
		slog.Bool("payment_api_configured", c.PaymentAPIURL != ""),
		slog.Bool("allowed_origins_set", c.AllowedOrigins != ""),
		slog.Float64("rate_limit_rps", c.RateLimitRequests),
		slog.Int("rate_limit_burst", c.RateLimitBurst),
	)
}
