package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes YAML strings like "500ms" or "2s"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// AsDuration returns the value as a time.Duration
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port     int    `yaml:"port"`
		APIToken string `yaml:"api_token"`
	} `yaml:"server"`
	Storage struct {
		// Backend is "memory" or "postgres".
		Backend  string `yaml:"backend"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"db_name"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"storage"`
	NATS struct {
		// URL enables alert fan-out when set.
		URL     string `yaml:"url"`
		Subject string `yaml:"subject"`
	} `yaml:"nats"`
	Admission struct {
		EvaluationTimeout Duration `yaml:"evaluation_timeout"`
		SoftLimitCents    int64         `yaml:"soft_limit_cents"`
		HardLimitCents    int64         `yaml:"hard_limit_cents"`
		BaselineWindow    int           `yaml:"baseline_window"`
	} `yaml:"admission"`
	Reopen struct {
		Cron string `yaml:"cron"`
	} `yaml:"reopen"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MONEYGATE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MONEYGATE_API_TOKEN"); v != "" {
		cfg.Server.APIToken = v
	}
	if v := os.Getenv("MONEYGATE_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		cfg.Storage.Host = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		cfg.Storage.Password = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("MONEYGATE_REOPEN_CRON"); v != "" {
		cfg.Reopen.Cron = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 50051
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "memory"
	}
	if cfg.Storage.Host == "" {
		cfg.Storage.Host = "localhost"
	}
	if cfg.Storage.Port == 0 {
		cfg.Storage.Port = 5432
	}
	if cfg.Storage.User == "" {
		cfg.Storage.User = "postgres"
	}
	if cfg.Storage.DBName == "" {
		cfg.Storage.DBName = "moneygate"
	}
	if cfg.Storage.SSLMode == "" {
		cfg.Storage.SSLMode = "disable"
	}
	if cfg.NATS.Subject == "" {
		cfg.NATS.Subject = "moneygate.alerts"
	}
	if cfg.Admission.EvaluationTimeout == 0 {
		cfg.Admission.EvaluationTimeout = Duration(2 * time.Second)
	}
	if cfg.Admission.BaselineWindow == 0 {
		cfg.Admission.BaselineWindow = 20
	}
	if cfg.Reopen.Cron == "" {
		cfg.Reopen.Cron = "0 * * * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.APIToken == "" {
		return fmt.Errorf("server.api_token is required")
	}
	if c.Storage.Backend != "memory" && c.Storage.Backend != "postgres" {
		return fmt.Errorf("storage.backend must be memory or postgres")
	}
	if c.Storage.Backend == "postgres" && c.Storage.Password == "" {
		return fmt.Errorf("storage.password is required for postgres")
	}
	return nil
}

// ConnectionString builds the postgres connection string.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Storage.Host, c.Storage.Port, c.Storage.User, c.Storage.Password,
		c.Storage.DBName, c.Storage.SSLMode)
}
