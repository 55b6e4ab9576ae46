package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/osa911/formmailer/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Host        string `env:"HOST" envDefault:"127.0.0.1"`
	Port        string `env:"API_PORT" envDefault:"8100"`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE" envDefault:"./logs/api.log"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// HTTP Configuration
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	RateLimitRPS    int           `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// Mail Configuration
	Mail MailConfig
}

// MailConfig holds the SMTP settings used by the mail dispatcher
type MailConfig struct {
	Host     string        `env:"SMTP_SERVER,required,notEmpty"`
	Port     int           `env:"SMTP_PORT,required"`
	From     string        `env:"EMAIL_FROM,required,notEmpty"`
	Password string        `env:"EMAIL_PASSWORD,required,notEmpty,unset"`
	To       string        `env:"EMAIL_TO,required,notEmpty"`
	SSL      bool          `env:"SMTP_SSL" envDefault:"true"`
	Subject  string        `env:"EMAIL_SUBJECT" envDefault:"User Submitted Data"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv never overrides variables already present in the process
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env.Parse cannot check on its own
func (c *Config) Validate() error {
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("invalid SMTP_PORT: %d", c.Mail.Port)
	}
	if !strings.Contains(c.Mail.From, "@") {
		return fmt.Errorf("invalid EMAIL_FROM: %q", c.Mail.From)
	}
	if !strings.Contains(c.Mail.To, "@") {
		return fmt.Errorf("invalid EMAIL_TO: %q", c.Mail.To)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit values must be non-negative")
	}
	return c.Logging().Validate()
}

// IsProduction reports whether the service runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Logging returns the logger configuration derived from the environment
func (c *Config) Logging() *logging.Config {
	logCfg := logging.DefaultConfig()
	logCfg.Level = strings.ToLower(c.LogLevel)
	logCfg.File = c.LogFile
	return logCfg
}
