// Package config resolves match-alert settings from the environment.
//
// Settings are read with cleanenv after an optional dotenv file has been loaded;
// variables already present in the environment always win over the file. The CLI
// applies explicitly-set flags on top of the result before calling Validate.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/mail"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/pfrederiksen/match-alert/internal/match"
)

type Config struct {
	APIKey         string `env:"FOOTBALL_DATA_API_KEY" env-description:"football-data.org API token"`
	BaseURL        string `env:"FOOTBALL_DATA_BASE_URL" env-default:"https://api.football-data.org/v4"`
	SMTPHost       string `env:"SMTP_HOST" env-default:"smtp.sendgrid.net"`
	SMTPPort       int    `env:"SMTP_PORT" env-default:"587"`
	SMTPUser       string `env:"SMTP_USER" env-default:"apikey"`
	SMTPPass       string `env:"SMTP_PASS" env-description:"SendGrid API key used as SMTP password"`
	SenderEmail    string `env:"SENDER_EMAIL"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`
	Date           string `env:"MATCH_DATE" env-description:"YYYY-MM-DD, defaults to today"`
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads a dotenv file (if present) and then the environment.
// An empty envFile skips the dotenv step; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills values that depend on the run, such as today's date.
func (c *Config) ApplyDefaults(now time.Time) {
	if strings.TrimSpace(c.Date) == "" {
		c.Date = match.Today(now)
	}
	if c.SMTPUser == "" {
		c.SMTPUser = "apikey"
	}
}

// Validate checks required inputs and formats. Missing inputs are reported by flag name.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		flag  string
		value string
	}{
		{"api-key", c.APIKey},
		{"smtp-pass", c.SMTPPass},
		{"sender-email", c.SenderEmail},
		{"recipient-email", c.RecipientEmail},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, `"`+r.flag+`"`)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}

	if err := match.ValidateDate(c.Date); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(c.SenderEmail); err != nil {
		return fmt.Errorf("invalid sender email %q: %w", c.SenderEmail, err)
	}
	if _, err := mail.ParseAddress(c.RecipientEmail); err != nil {
		return fmt.Errorf("invalid recipient email %q: %w", c.RecipientEmail, err)
	}

	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}

	return nil
}
