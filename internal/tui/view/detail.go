package view

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/glabrego/apod-gallery/internal/gallery"
	tuitheme "github.com/glabrego/apod-gallery/internal/tui/theme"
)

// CloseLabel is the close control drawn in the detail viewer's top row.
const CloseLabel = "[×]"

type PreviewState struct {
	Enabled bool
	Loading bool
	Raw     string
	Err     string
}

// DetailLines renders the body of the detail viewer in a fixed order: title,
// date, content, explanation, then the credit when present.
func DetailLines(card gallery.Card, width int, preview PreviewState, th tuitheme.Theme) []string {
	if width < 10 {
		width = 10
	}
	lines := make([]string, 0, 16)
	for _, line := range WrapText(card.Entry.Title, width) {
		lines = append(lines, th.ModalTitle.Render(line))
	}
	lines = append(lines, th.ModalDate.Render("Date: "+card.Entry.Date), "")
	lines = append(lines, contentLines(card, width, preview, th)...)
	lines = append(lines, "")
	for _, line := range WrapText(card.Entry.Explanation, width) {
		lines = append(lines, th.Explanation.Render(line))
	}
	if credit := strings.TrimSpace(card.Entry.Copyright); credit != "" {
		lines = append(lines, "")
		for _, line := range WrapText("© "+credit, width) {
			lines = append(lines, th.Credit.Render(line))
		}
	}
	return lines
}

// CloseRow right-aligns the close control in a row of the given width.
func CloseRow(width int, th tuitheme.Theme) string {
	pad := width - xansi.StringWidth(CloseLabel)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + th.ModalClose.Render(CloseLabel)
}

func contentLines(card gallery.Card, width int, preview PreviewState, th tuitheme.Theme) []string {
	style := th.Media(card.Variant)
	if card.Variant == gallery.VariantVideo {
		lines := []string{th.PlayIcon.Render("▶") + style.Render(" Embedded video")}
		for _, line := range WrapText(card.ContentURL(), width) {
			lines = append(lines, style.Render(line))
		}
		return append(lines, th.ModalHint.Render("o: play in browser"))
	}

	lines := make([]string, 0, 4)
	for _, line := range WrapText(card.ContentURL(), width) {
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, previewLines(preview, width, th)...)
	return append(lines, th.ModalHint.Render("o: open full resolution in browser"))
}

func previewLines(preview PreviewState, width int, th tuitheme.Theme) []string {
	if !preview.Enabled {
		return nil
	}
	if preview.Loading {
		return []string{th.ModalHint.Render("Loading image preview...")}
	}
	if raw := strings.TrimRight(preview.Raw, "\r\n"); strings.TrimSpace(raw) != "" {
		return centerLines(strings.Split(raw, "\n"), width)
	}
	if errMsg := strings.TrimSpace(preview.Err); errMsg != "" {
		return WrapText("Image preview unavailable: "+errMsg, width)
	}
	return nil
}

func centerLines(lines []string, width int) []string {
	if width <= 0 || len(lines) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		visible := xansi.StringWidth(line)
		if visible >= width {
			out[i] = line
			continue
		}
		out[i] = strings.Repeat(" ", (width-visible)/2) + line
	}
	return out
}
