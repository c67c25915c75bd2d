package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glabrego/apod-gallery/internal/apod"
	"github.com/glabrego/apod-gallery/internal/gallery"
	"github.com/glabrego/apod-gallery/internal/logging"
)

type Fetcher interface {
	FetchRange(ctx context.Context, r apod.Range) ([]apod.Entry, error)
}

type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
}

func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{fetcher: fetcher, logger: logger}
}

// LoadGallery fetches the range and classifies each entry into a card, in
// ascending date order. Every failure wraps apod.ErrFetchFailed.
func (s *Service) LoadGallery(ctx context.Context, r apod.Range) ([]gallery.Card, error) {
	start := time.Now()
	s.logger.Info("fetch started", slog.String("range", r.String()))

	entries, err := s.fetcher.FetchRange(ctx, r)
	if err != nil {
		s.logger.Warn("fetch failed", slog.String("range", r.String()), slog.Any("error", err))
		if !errors.Is(err, apod.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", apod.ErrFetchFailed, err)
		}
		return nil, fmt.Errorf("load gallery %s: %w", r, err)
	}
	entries = apod.SortEntries(entries)

	cards := gallery.BuildCards(entries)
	s.logger.Info("fetch completed",
		slog.String("range", r.String()),
		slog.Int("count", len(cards)),
		slog.Duration("duration", time.Since(start)))
	return cards, nil
}
