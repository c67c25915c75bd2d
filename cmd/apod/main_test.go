package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glabrego/apod-gallery/internal/apod"
	"github.com/glabrego/apod-gallery/internal/logging"
)

func TestStartRange(t *testing.T) {
	now := time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "defaults", want: "2023-12-31..2024-01-09"},
		{name: "both flags", start: "2024-01-02", end: "2024-01-05", want: "2024-01-02..2024-01-05"},
		{name: "start only", start: "2024-01-05", want: "2024-01-05..2024-01-09"},
		{name: "end only", end: "2024-01-03", want: "2023-12-31..2024-01-03"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := startRange(tc.start, tc.end, 9, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.String(); got != tc.want {
				t.Fatalf("startRange() = %s, want %s", got, tc.want)
			}
		})
	}

	if _, err := startRange("2024-01-05", "2024-01-01", 9, now); !errors.Is(err, apod.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRun_ClosesLogOnError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	logPath := filepath.Join(dir, "apod.log")
	if err := os.WriteFile(cfgPath, []byte("log_file = \""+filepath.ToSlash(logPath)+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("APOD_LOG_FILE", "")

	closed := 0
	prev := openLog
	openLog = func(path, level string) (*slog.Logger, func() error, error) {
		logger, closeFn, err := logging.New(path, level)
		if err != nil {
			return nil, nil, err
		}
		return logger, func() error {
			closed++
			return closeFn()
		}, nil
	}
	t.Cleanup(func() { openLog = prev })

	err := run(cfgPath, "2024-01-05", "2024-01-01", "")
	if !errors.Is(err, apod.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if closed != 1 {
		t.Fatalf("expected log to be closed once, got %d", closed)
	}
}
