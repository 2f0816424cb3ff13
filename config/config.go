package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application settings
type Config struct {
	Port            string
	DatabasePath    string
	UseHTTPS        bool
	SessionLifetime int64 // seconds
	LogLevel        string
	LogFormat       string
	BcryptCost      int
	ConfirmTTL      time.Duration
	OIDC            OIDCConfig
}

// OIDCConfig holds the optional OpenID Connect login settings
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether any OIDC setting was provided
func (c OIDCConfig) Enabled() bool {
	return c.Domain != "" || c.ClientID != "" || c.ClientSecret != "" || c.CallbackURL != ""
}

// Load reads .env files (when present) and the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_PATH", "workout_tracker.db")
	v.SetDefault("USE_HTTPS", false)
	v.SetDefault("SESSION_LIFETIME", 3600)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("BCRYPT_COST", 12)

	cfg := &Config{
		Port:            v.GetString("PORT"),
		DatabasePath:    v.GetString("DATABASE_PATH"),
		UseHTTPS:        v.GetBool("USE_HTTPS"),
		SessionLifetime: v.GetInt64("SESSION_LIFETIME"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		BcryptCost:      v.GetInt("BCRYPT_COST"),
		ConfirmTTL:      v.GetDuration("CONFIRM_TTL"),
		OIDC: OIDCConfig{
			Domain:       v.GetString("OIDC_DOMAIN"),
			ClientID:     v.GetString("OIDC_CLIENT_ID"),
			ClientSecret: v.GetString("OIDC_CLIENT_SECRET"),
			CallbackURL:  v.GetString("OIDC_CALLBACK_URL"),
		},
	}

	// Tickets live as long as the session unless set explicitly
	if cfg.ConfirmTTL == 0 {
		cfg.ConfirmTTL = cfg.SessionDuration()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency
func (c *Config) Validate() error {
	var problems []string

	if c.Port == "" {
		problems = append(problems, "PORT is required")
	}
	if c.DatabasePath == "" {
		problems = append(problems, "DATABASE_PATH is required")
	}
	if c.SessionLifetime <= 0 {
		problems = append(problems, "SESSION_LIFETIME must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		problems = append(problems, fmt.Sprintf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.ConfirmTTL <= 0 {
		problems = append(problems, "CONFIRM_TTL must be a positive duration")
	} else if c.ConfirmTTL < c.SessionDuration() {
		problems = append(problems, "CONFIRM_TTL must not be shorter than SESSION_LIFETIME")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, "LOG_LEVEL is not a valid level")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, "LOG_FORMAT must be text or json")
	}
	if c.OIDC.Enabled() {
		if c.OIDC.Domain == "" || c.OIDC.ClientID == "" || c.OIDC.ClientSecret == "" || c.OIDC.CallbackURL == "" {
			problems = append(problems, "OIDC_DOMAIN, OIDC_CLIENT_ID, OIDC_CLIENT_SECRET and OIDC_CALLBACK_URL must be set together")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// SessionDuration returns SessionLifetime as a duration
func (c *Config) SessionDuration() time.Duration {
	return time.Duration(c.SessionLifetime) * time.Second
}

// ConfigureLogging applies the log settings to the standard logrus logger
func (c *Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
