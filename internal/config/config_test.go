package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APOD_CONFIG",
		"APOD_API_KEY",
		"APOD_API_BASE_URL",
		"APOD_RANGE_DAYS",
		"APOD_REQUEST_TIMEOUT",
		"APOD_REQUESTS_PER_HOUR",
		"APOD_INLINE_IMAGE_PREVIEW",
		"APOD_LOG_FILE",
		"APOD_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoadFromEnv_UsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("unexpected API base URL: %s", cfg.APIBaseURL)
	}
	if cfg.APIKey != "DEMO_KEY" {
		t.Fatalf("unexpected API key: %s", cfg.APIKey)
	}
	if cfg.RangeDays != 9 {
		t.Fatalf("unexpected range days: %d", cfg.RangeDays)
	}
	if !cfg.InlineImagePreview {
		t.Fatal("expected inline image preview on by default")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APOD_API_KEY", "secret")
	t.Setenv("APOD_RANGE_DAYS", "3")
	t.Setenv("APOD_REQUEST_TIMEOUT", "2s")
	t.Setenv("APOD_INLINE_IMAGE_PREVIEW", "false")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.APIKey != "secret" || cfg.RangeDays != 3 || cfg.RequestTimeout != 2*time.Second || cfg.InlineImagePreview {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFromEnv_BadInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("APOD_RANGE_DAYS", "nine")

	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("expected error for non-integer range days")
	}
}

func TestLoad_MissingDefaultFileFallsBack(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RequestsPerHour != defaultRequestsPerHour {
		t.Fatalf("unexpected requests per hour: %d", cfg.RequestsPerHour)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_key = "from-file"
range_days = 4
request_timeout = "5s"
inline_image_preview = false
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("APOD_RANGE_DAYS", "6")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "from-file" {
		t.Fatalf("expected file api key, got %s", cfg.APIKey)
	}
	if cfg.RangeDays != 6 {
		t.Fatalf("expected env to win for range days, got %d", cfg.RangeDays)
	}
	if cfg.RequestTimeout != 5*time.Second || cfg.InlineImagePreview || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_key = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	base := Default()

	trailing := base
	trailing.APIBaseURL = "https://api.nasa.gov/planetary/apod/"
	if err := trailing.Validate(); err == nil {
		t.Fatal("expected error for trailing slash")
	}

	level := base
	level.LogLevel = "verbose"
	if err := level.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	timeout := base
	timeout.RequestTimeout = 0
	if err := timeout.Validate(); err == nil {
		t.Fatal("expected error for zero timeout")
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
