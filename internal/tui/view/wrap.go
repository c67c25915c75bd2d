package view

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// WrapText breaks text on word boundaries so no line is wider than width.
// Words longer than width are split. Existing newlines are kept.
func WrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for xansi.StringWidth(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, xansi.Cut(word, 0, width))
				word = xansi.Cut(word, width, xansi.StringWidth(word))
			}

			if line == "" {
				line = word
				continue
			}
			if xansi.StringWidth(line)+1+xansi.StringWidth(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return xansi.Truncate(s, width, "…")
}

// ClampLines keeps at most n lines and marks the last kept line when more
// were dropped.
func ClampLines(lines []string, n, width int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	last := out[n-1]
	if xansi.StringWidth(last)+1 > width {
		last = xansi.Cut(last, 0, width-1)
	}
	out[n-1] = last + "…"
	return out
}

func padRight(s string, width int) string {
	if n := xansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
