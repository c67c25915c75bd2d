package apod

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrFetchFailed wraps every failure returned by FetchRange: transport errors,
// non-success statuses and bodies that are not entry JSON.
var ErrFetchFailed = errors.New("fetch failed")

const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Entry is one day of the picture archive.
type Entry struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

type Option func(*Client)

// WithRateLimit caps requests at an hourly budget of perHour. The full budget
// is available as a burst and refills evenly over the hour.
func WithRateLimit(perHour int) Option {
	return func(c *Client) {
		if perHour <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), perHour)
	}
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRange issues one request for the inclusive range and returns its
// entries in ascending date order, unique by date.
func (c *Client) FetchRange(ctx context.Context, r Range) ([]Entry, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit: %w", ErrFetchFailed, err)
		}
	}

	q := make(url.Values)
	q.Set("api_key", c.apiKey)
	q.Set("start_date", r.Start.Format(time.DateOnly))
	q.Set("end_date", r.End.Format(time.DateOnly))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetchFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrFetchFailed, err)
	}
	entries, err := DecodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return entries, nil
}

// DecodeEntries accepts either a single entry object or an array of entries
// and returns them sorted ascending by date with duplicate dates removed.
func DecodeEntries(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("decode entries: empty body")
	}

	var entries []Entry
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("decode entries: %w", err)
		}
	case '{':
		var entry Entry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = []Entry{entry}
	default:
		return nil, fmt.Errorf("decode entries: unexpected JSON starting with %q", trimmed[0])
	}
	return SortEntries(entries), nil
}

// SortEntries orders entries by date, oldest first, keeping the first entry
// seen for each date.
func SortEntries(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.Date]; ok {
			continue
		}
		seen[entry.Date] = struct{}{}
		out = append(out, entry)
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return compareDates(a.Date, b.Date)
	})
	return out
}

func compareDates(a, b string) int {
	ta, errA := time.Parse(time.DateOnly, a)
	tb, errB := time.Parse(time.DateOnly, b)
	if errA == nil && errB == nil {
		return ta.Compare(tb)
	}
	return cmp.Compare(a, b)
}
