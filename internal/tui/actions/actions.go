package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/apod-gallery/internal/apod"
	"github.com/glabrego/apod-gallery/internal/gallery"
)

// DefaultFetchTimeout bounds a gallery fetch when the caller passes zero.
const DefaultFetchTimeout = 20 * time.Second

type Service interface {
	LoadGallery(ctx context.Context, r apod.Range) ([]gallery.Card, error)
}

// FetchSuccessMsg and FetchErrorMsg carry the sequence number of the fetch
// that produced them. Receivers drop results whose Seq is not the latest.
type FetchSuccessMsg struct {
	Seq      int
	Range    apod.Range
	Cards    []gallery.Card
	Duration time.Duration
}

type FetchErrorMsg struct {
	Seq      int
	Range    apod.Range
	Err      error
	Duration time.Duration
}

// PreviewSuccessMsg and PreviewErrorMsg are tagged with the detail body that
// asked for them.
type PreviewSuccessMsg struct {
	Body int
	Raw  string
}

type PreviewErrorMsg struct {
	Body int
	Err  error
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

func FetchCmd(service Service, r apod.Range, seq int, timeout time.Duration) tea.Cmd {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()

		cards, err := service.LoadGallery(ctx, r)
		if err != nil {
			return FetchErrorMsg{Seq: seq, Range: r, Err: err, Duration: time.Since(start)}
		}
		return FetchSuccessMsg{Seq: seq, Range: r, Cards: cards, Duration: time.Since(start)}
	}
}

func PreviewCmd(body int, imageURL string, width int, renderFn func(string, int) (string, error)) tea.Cmd {
	return func() tea.Msg {
		if renderFn == nil {
			return PreviewErrorMsg{Body: body, Err: fmt.Errorf("image preview is not available")}
		}
		raw, err := renderFn(imageURL, width)
		if err != nil {
			return PreviewErrorMsg{Body: body, Err: err}
		}
		return PreviewSuccessMsg{Body: body, Raw: raw}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard", Opened: false}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}
