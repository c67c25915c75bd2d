package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Screen pads or cuts s to exactly h lines of w cells.
func Screen(s string, w, h int) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if xansi.StringWidth(line) > w {
			line = xansi.Cut(line, 0, w)
		}
		out[i] = padRight(line, w)
	}
	return out
}

// Dim strips the styling from every line and repaints it with the backdrop
// style.
func Dim(lines []string, backdrop lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = backdrop.Render(xansi.Strip(line))
	}
	return out
}

// OverlayAt paints fg over bg with its top-left corner at (x, y). bg lines
// must already be w cells wide.
func OverlayAt(bg []string, fg string, w, x, y int) []string {
	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, line := range fgLines {
		if n := xansi.StringWidth(line); n > fgW {
			fgW = n
		}
	}
	if fgW > w {
		fgW = w
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	out := append([]string(nil), bg...)
	for i := 0; i < len(fgLines) && y+i < len(out); i++ {
		bgLine := out[y+i]
		left := xansi.Cut(bgLine, 0, x)
		right := xansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}
		out[y+i] = left + fgLine + right
	}
	return out
}
