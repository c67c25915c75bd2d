package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultAPIBaseURL      = "https://api.nasa.gov/planetary/apod"
	defaultAPIKey          = "DEMO_KEY"
	defaultConfigPath      = "~/.config/apod/config.toml"
	defaultRangeDays       = 9
	defaultRequestTimeout  = 15 * time.Second
	defaultRequestsPerHour = 30
	defaultLogLevel        = "info"
)

// Config holds runtime settings for the gallery.
type Config struct {
	APIKey             string
	APIBaseURL         string
	RangeDays          int
	RequestTimeout     time.Duration
	RequestsPerHour    int
	InlineImagePreview bool
	LogFile            string
	LogLevel           string
}

type fileConfig struct {
	APIKey             string `toml:"api_key"`
	APIBaseURL         string `toml:"api_base_url"`
	RangeDays          *int   `toml:"range_days"`
	RequestTimeout     string `toml:"request_timeout"`
	RequestsPerHour    *int   `toml:"requests_per_hour"`
	InlineImagePreview *bool  `toml:"inline_image_preview"`
	LogFile            string `toml:"log_file"`
	LogLevel           string `toml:"log_level"`
}

func Default() Config {
	return Config{
		APIKey:             defaultAPIKey,
		APIBaseURL:         defaultAPIBaseURL,
		RangeDays:          defaultRangeDays,
		RequestTimeout:     defaultRequestTimeout,
		RequestsPerHour:    defaultRequestsPerHour,
		InlineImagePreview: true,
		LogLevel:           defaultLogLevel,
	}
}

// Load reads the TOML file at path (APOD_CONFIG or the default location when
// empty), then applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv("APOD_CONFIG")
	}
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg := Default()
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := applyFile(&cfg, data); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv ignores any config file.
func LoadFromEnv() (Config, error) {
	cfg := Default()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, data []byte) error {
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v := strings.TrimSpace(raw.APIKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if raw.RangeDays != nil {
		cfg.RangeDays = *raw.RangeDays
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if raw.RequestsPerHour != nil {
		cfg.RequestsPerHour = *raw.RequestsPerHour
	}
	if raw.InlineImagePreview != nil {
		cfg.InlineImagePreview = *raw.InlineImagePreview
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("APOD_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("APOD_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("APOD_RANGE_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("APOD_RANGE_DAYS must be an integer: %s", v)
		}
		cfg.RangeDays = n
	}
	if v := os.Getenv("APOD_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("APOD_REQUEST_TIMEOUT must be a duration: %s", v)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("APOD_REQUESTS_PER_HOUR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("APOD_REQUESTS_PER_HOUR must be an integer: %s", v)
		}
		cfg.RequestsPerHour = n
	}
	if v := os.Getenv("APOD_INLINE_IMAGE_PREVIEW"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("APOD_INLINE_IMAGE_PREVIEW must be a boolean: %s", v)
		}
		cfg.InlineImagePreview = b
	}
	if v := os.Getenv("APOD_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("APOD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("APIKey is required")
	}
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.RangeDays < 0 {
		return fmt.Errorf("RangeDays must not be negative: %d", c.RangeDays)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("RequestTimeout must be positive: %s", c.RequestTimeout)
	}
	if c.RequestsPerHour < 0 {
		return fmt.Errorf("RequestsPerHour must not be negative: %d", c.RequestsPerHour)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
