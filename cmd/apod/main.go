package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/apod-gallery/internal/apod"
	"github.com/glabrego/apod-gallery/internal/app"
	"github.com/glabrego/apod-gallery/internal/config"
	"github.com/glabrego/apod-gallery/internal/gallery"
	"github.com/glabrego/apod-gallery/internal/logging"
	"github.com/glabrego/apod-gallery/internal/markup"
	"github.com/glabrego/apod-gallery/internal/tui"
)

var openLog = logging.New

func main() {
	configPath := flag.String("config", "", "path to config file (default: $APOD_CONFIG or ~/.config/apod/config.toml)")
	startFlag := flag.String("start", "", "start date, YYYY-MM-DD")
	endFlag := flag.String("end", "", "end date, YYYY-MM-DD")
	exportPath := flag.String("export", "", "write the gallery for the range as an HTML page and exit")
	flag.Parse()

	if err := run(*configPath, *startFlag, *endFlag, *exportPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, startFlag, endFlag, exportPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	logger, closeLog, err := openLog(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log init error: %w", err)
	}
	defer closeLog()

	now := time.Now()
	r, err := startRange(startFlag, endFlag, cfg.RangeDays, now)
	if err != nil {
		return fmt.Errorf("range error: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	client := apod.NewClient(cfg.APIBaseURL, cfg.APIKey, httpClient, apod.WithRateLimit(cfg.RequestsPerHour))
	service := app.NewService(client, logger)

	if exportPath != "" {
		if err := export(service, logger, r, exportPath, cfg.RequestTimeout); err != nil {
			return fmt.Errorf("export error: %w", err)
		}
		return nil
	}

	model := tui.NewModel(tui.Options{
		Service:            service,
		Logger:             logger,
		Range:              r,
		FetchTimeout:       cfg.RequestTimeout + 5*time.Second,
		InlineImagePreview: cfg.InlineImagePreview,
		PreviewClient:      httpClient,
		AutoFetch:          startFlag != "" || endFlag != "",
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func startRange(start, end string, days int, now time.Time) (apod.Range, error) {
	r := apod.DefaultRange(now, days)
	if start == "" && end == "" {
		return r, nil
	}
	if start == "" {
		start = r.Start.Format(time.DateOnly)
	}
	if end == "" {
		end = r.End.Format(time.DateOnly)
	}
	return apod.ParseRange(start, end, now)
}

// export writes the page even when the fetch fails; the page then carries
// only the failure message.
func export(service *app.Service, logger *slog.Logger, r apod.Range, path string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout+5*time.Second)
	defer cancel()

	data := markup.PageData{Fact: gallery.RandomFact(nil)}
	cards, err := service.LoadGallery(ctx, r)
	if err != nil {
		data.Failed = true
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	} else {
		data.Cards = cards
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := markup.Render(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	logger.Info("gallery exported",
		slog.String("path", path),
		slog.String("range", r.String()),
		slog.Int("cards", len(data.Cards)),
		slog.Bool("failed", data.Failed))
	return nil
}
