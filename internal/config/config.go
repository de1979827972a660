package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort        = "8080"
	defaultCORSOrigin  = "https://mygallery-m4nd.onrender.com"
	defaultTokenExpiry = 7 * 24 * time.Hour
)

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns DATABASE_URL when it is set, otherwise a key/value DSN built from the parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := d.Port
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, port, d.User, d.Password, d.Name, sslMode)
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

// Enabled reports whether enough of the bucket settings are present to build a client.
func (r R2Config) Enabled() bool {
	return r.AccountID != "" && r.AccessKeyID != "" && r.SecretAccessKey != "" && r.Bucket != ""
}

type Config struct {
	Port     string
	Env      string
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     struct {
		AllowOrigins string
	}
	R2 R2Config
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.Env = getEnv("APP_ENV", "production")

	// Database config
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Database.Host = os.Getenv("DB_HOST")
	cfg.Database.Port = os.Getenv("DB_PORT")
	cfg.Database.User = os.Getenv("DB_USERNAME")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.Name = os.Getenv("DB_DATABASE")
	cfg.Database.SSLMode = os.Getenv("DB_SSLMODE")

	// JWT config
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	expiry, err := ParseExpiry(os.Getenv("JWT_EXPIRES"))
	if err != nil {
		return nil, err
	}
	cfg.JWT.Expiry = expiry

	cfg.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", defaultCORSOrigin)

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = strings.TrimRight(os.Getenv("R2_PUBLIC_URL"), "/")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.Name == "") {
		return errors.New("DATABASE_URL or DB_HOST/DB_DATABASE must be set")
	}
	if c.R2.Enabled() && c.R2.PublicURL == "" {
		return errors.New("R2_PUBLIC_URL is required when R2 storage is configured")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ParseExpiry accepts a Go duration ("168h") or a day count ("7d").
// An empty value yields the default of seven days.
func ParseExpiry(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultTokenExpiry, nil
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid JWT_EXPIRES value %q", value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid JWT_EXPIRES value %q", value)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
