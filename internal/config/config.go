package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the environment-sourced configuration for one process. Every
// credential on the live submission path is required at startup; a
// missing one is a configuration error, never a silent no-op.
type Config struct {
	Port string
	Env  string

	Airtable struct {
		APIKey  string
		BaseID  string
		TableID string
	}

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}

	BusinessEmail string
	HTTPTimeout   time.Duration
}

// Load reads configuration from the environment. A .env file is applied
// first when present; real deployments configure the environment
// directly, so its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var missing []string
	require := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg.Airtable.APIKey = require("AIRTABLE_API_KEY")
	cfg.Airtable.BaseID = require("AIRTABLE_BASE_ID")
	cfg.Airtable.TableID = require("AIRTABLE_TABLE_ID")
	cfg.SMTP.Host = require("EMAIL_HOST")
	cfg.SMTP.Username = require("EMAIL_USER")
	cfg.SMTP.Password = require("EMAIL_PASS")
	cfg.BusinessEmail = require("BUSINESS_EMAIL")

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	smtpPort := os.Getenv("EMAIL_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}
	p, err := strconv.Atoi(smtpPort)
	if err != nil {
		return nil, fmt.Errorf("invalid EMAIL_PORT %q: %w", smtpPort, err)
	}
	cfg.SMTP.Port = p

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.Env = os.Getenv("APP_ENV")
	if cfg.Env == "" {
		cfg.Env = "production"
	}

	timeout := os.Getenv("HTTP_TIMEOUT_SECONDS")
	if timeout == "" {
		timeout = "15"
	}
	secs, err := strconv.Atoi(timeout)
	if err != nil || secs <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS %q", timeout)
	}
	cfg.HTTPTimeout = time.Duration(secs) * time.Second

	return cfg, nil
}

// Development reports whether error detail may be echoed in responses.
func (c *Config) Development() bool {
	return c.Env == "development"
}
