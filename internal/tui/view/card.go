package view

import (
	"strings"

	"github.com/glabrego/apod-gallery/internal/gallery"
	tuitheme "github.com/glabrego/apod-gallery/internal/tui/theme"
)

// CardExplanationLines caps the explanation preview on a card.
const CardExplanationLines = 3

const cardGutter = 2

// CardLines renders one card. The number of lines depends on the card and
// width only, so layout can be computed without knowing the selection.
func CardLines(card gallery.Card, width int, active bool, th tuitheme.Theme) []string {
	inner := width - cardGutter
	if inner < 10 {
		inner = 10
	}

	body := make([]string, 0, 4+CardExplanationLines)
	body = append(body, th.CardTitle.Render(Truncate(card.Entry.Title, inner)))
	body = append(body, mediaLine(card, inner, th))
	explanation := ClampLines(WrapText(card.Entry.Explanation, inner), CardExplanationLines, inner)
	for _, line := range explanation {
		body = append(body, th.Explanation.Render(line))
	}
	body = append(body, th.CardDate.Render("Date: "+card.Entry.Date))

	marker := strings.Repeat(" ", cardGutter)
	if active {
		marker = th.CardMarker.Render("▌ ")
	}
	lines := make([]string, 0, len(body)+1)
	for i, line := range body {
		line = marker + line
		if i == 0 {
			line = th.RenderActiveLine(active, line)
		}
		lines = append(lines, line)
	}
	return append(lines, "")
}

func mediaLine(card gallery.Card, width int, th tuitheme.Theme) string {
	style := th.Media(card.Variant)
	switch card.Variant {
	case gallery.VariantImage:
		label := "▣ image "
		return style.Render(label) + Truncate(card.ContentURL(), width-len([]rune(label)))
	case gallery.VariantVideo:
		label := th.PlayIcon.Render("▶") + style.Render(" video ")
		target := card.Thumbnail
		if target == "" {
			target = card.ContentURL()
		}
		return label + Truncate(target, width-7)
	default:
		label := "View Video ↗ "
		return style.Render(label) + Truncate(card.ContentURL(), width-len([]rune(label)))
	}
}
