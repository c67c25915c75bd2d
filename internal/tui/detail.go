package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/glabrego/apod-gallery/internal/gallery"
	tuitheme "github.com/glabrego/apod-gallery/internal/tui/theme"
	"github.com/glabrego/apod-gallery/internal/tui/view"
)

// detailViewer is the modal that shows one card in full. It holds at most
// one body; opening a card replaces whatever was there.
type detailViewer struct {
	open bool
	card gallery.Card
	// body identifies the current body. Async results tagged with an older
	// body are dropped.
	body     int
	preview  view.PreviewState
	viewport viewport.Model
}

func newDetailViewer() detailViewer {
	return detailViewer{viewport: viewport.New(0, 0)}
}

// show replaces the body with card. Link cards never open the viewer.
func (d *detailViewer) show(card gallery.Card, withPreview bool) bool {
	if !card.Opens() {
		return false
	}
	previewing := withPreview && card.Variant == gallery.VariantImage
	d.body++
	d.open = true
	d.card = card
	d.preview = view.PreviewState{Enabled: previewing, Loading: previewing}
	d.viewport.SetContent("")
	d.viewport.GotoTop()
	return true
}

// hide closes the viewer. The body stays in place until the next show
// replaces it.
func (d *detailViewer) hide() bool {
	if !d.open {
		return false
	}
	d.open = false
	return true
}

func (d *detailViewer) resize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

func (d *detailViewer) refresh(th tuitheme.Theme) {
	if !d.open {
		return
	}
	lines := view.DetailLines(d.card, d.viewport.Width, d.preview, th)
	d.viewport.SetContent(strings.Join(lines, "\n"))
}

func (d *detailViewer) previewDone(body int, raw string, err error) bool {
	if !d.open || body != d.body || !d.preview.Enabled {
		return false
	}
	d.preview.Loading = false
	d.preview.Raw = raw
	d.preview.Err = ""
	if err != nil {
		d.preview.Err = err.Error()
	}
	return true
}
