package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/apod-gallery/internal/tui/state"
	"github.com/glabrego/apod-gallery/internal/tui/view"
)

// Screen rows above and below the display area. The controls sit on
// controlsRow.
const (
	headerHeight = 6
	footerHeight = 3
	controlsRow  = 3

	defaultWidth  = 80
	defaultHeight = 24
	maxModalWidth = 100
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type control int

const (
	controlNone control = iota
	controlStart
	controlEnd
	controlFetch
)

type segment struct {
	target control
	text   string
}

// cardSpan records which display-area rows a card occupies, end exclusive.
type cardSpan struct {
	index int
	top   int
	end   int
}

func (m Model) screenSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m Model) areaHeight() int {
	_, h := m.screenSize()
	area := h - headerHeight - footerHeight
	if area < 3 {
		area = 3
	}
	return area
}

func (m Model) controlSegments() []segment {
	th := m.theme
	return []segment{
		{target: controlNone, text: th.Label.Render("Start ")},
		{target: controlStart, text: th.InputStyle(m.focus == focusStart).Render("[" + m.startInput.View() + "]")},
		{target: controlNone, text: th.Label.Render("  End ")},
		{target: controlEnd, text: th.InputStyle(m.focus == focusEnd).Render("[" + m.endInput.View() + "]")},
		{target: controlNone, text: "  "},
		{target: controlFetch, text: th.ButtonStyle(m.display == displayLoading).Render("Get Space Images")},
	}
}

func (m Model) controlAt(x int) control {
	left := 0
	for _, seg := range m.controlSegments() {
		w := lipgloss.Width(seg.text)
		if x >= left && x < left+w {
			return seg.target
		}
		left += w
	}
	return controlNone
}

func (m Model) cardHeights() []int {
	w, _ := m.screenSize()
	heights := make([]int, len(m.cards))
	for i, card := range m.cards {
		heights[i] = len(view.CardLines(card, w, false, m.theme))
	}
	return heights
}

// cardRows lays out the visible cards from m.top. View and mouse handling
// both use it so a click always lands on the card that was drawn there.
func (m Model) cardRows() ([]string, []cardSpan) {
	w, _ := m.screenSize()
	area := m.areaHeight()
	lines := make([]string, 0, area)
	spans := make([]cardSpan, 0, 4)
	for i := m.top; i < len(m.cards) && len(lines) < area; i++ {
		cardLines := view.CardLines(m.cards[i], w, i == m.cursor && m.focus == focusGallery, m.theme)
		top := len(lines)
		lines = append(lines, cardLines...)
		end := top + len(cardLines) - 1
		if end > area {
			end = area
		}
		spans = append(spans, cardSpan{index: i, top: top, end: end})
	}
	if len(lines) > area {
		lines = lines[:area]
	}
	return lines, spans
}

func (m Model) cardAt(y int) int {
	row := y - headerHeight
	if row < 0 || row >= m.areaHeight() || m.display != displayCards {
		return -1
	}
	_, spans := m.cardRows()
	for _, span := range spans {
		if row >= span.top && row < span.end {
			return span.index
		}
	}
	return -1
}

func (m *Model) ensureCursorVisible() {
	m.cursor = state.ClampCursor(m.cursor, len(m.cards))
	m.top = state.ScrollTop(m.cardHeights(), m.top, m.cursor, m.areaHeight())
}

func (m Model) modalRect() rect {
	w, h := m.screenSize()
	bw := w - 4
	if bw > maxModalWidth {
		bw = maxModalWidth
	}
	if bw < 24 {
		bw = min(w, 24)
	}
	bh := h - 2
	if bh < 8 {
		bh = min(h, 8)
	}
	return rect{x: (w - bw) / 2, y: (h - bh) / 2, w: bw, h: bh}
}

// closeButtonRect is where the close label lands inside the box: one cell
// of border and one of padding on each side, label right-aligned on the
// first content row.
func (m Model) closeButtonRect() rect {
	box := m.modalRect()
	return rect{x: box.x + box.w - 2 - lipgloss.Width(view.CloseLabel), y: box.y + 1, w: lipgloss.Width(view.CloseLabel), h: 1}
}

func (m *Model) resizeDetail() {
	box := m.modalRect()
	m.detail.resize(max(box.w-4, 1), max(box.h-3, 1))
	m.detail.refresh(m.theme)
}
