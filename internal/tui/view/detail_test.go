package view

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/apod-gallery/internal/tui/theme"
)

func indexOf(lines []string, needle string) int {
	for i, line := range lines {
		if strings.Contains(stripANSI(line), needle) {
			return i
		}
	}
	return -1
}

func TestDetailLines_Order(t *testing.T) {
	th := tuitheme.Default()
	card := testCard("image", "https://apod.nasa.gov/orion.jpg")
	card.Entry.Copyright = "Jane Doe"

	lines := DetailLines(card, 60, PreviewState{}, th)
	order := []string{"Orion Nebula", "Date: 2024-01-05", "https://apod.nasa.gov/orion.jpg", "stellar nursery", "© Jane Doe"}
	last := -1
	for _, needle := range order {
		idx := indexOf(lines, needle)
		if idx <= last {
			t.Fatalf("expected %q after line %d, found at %d in %q", needle, last, idx, lines)
		}
		last = idx
	}
}

func TestDetailLines_VideoShowsPlayer(t *testing.T) {
	th := tuitheme.Default()
	card := testCard("video", "https://www.youtube.com/embed/abc123")

	lines := DetailLines(card, 60, PreviewState{Enabled: true, Loading: true}, th)
	if indexOf(lines, "▶ Embedded video") < 0 {
		t.Fatalf("expected embedded player line, got %q", lines)
	}
	if indexOf(lines, "Loading image preview") >= 0 {
		t.Fatal("video detail should not show image preview state")
	}
	if indexOf(lines, "©") >= 0 {
		t.Fatal("expected no credit line without copyright")
	}
}

func TestDetailLines_PreviewStates(t *testing.T) {
	th := tuitheme.Default()
	card := testCard("image", "https://apod.nasa.gov/orion.jpg")

	if lines := DetailLines(card, 60, PreviewState{Enabled: true, Loading: true}, th); indexOf(lines, "Loading image preview...") < 0 {
		t.Fatalf("expected loading line, got %q", lines)
	}
	if lines := DetailLines(card, 60, PreviewState{Enabled: true, Err: "chafa is not installed"}, th); indexOf(lines, "Image preview unavailable: chafa is not installed") < 0 {
		t.Fatalf("expected error line, got %q", lines)
	}
	lines := DetailLines(card, 60, PreviewState{Enabled: true, Raw: "@@@@\n####\n"}, th)
	idx := indexOf(lines, "@@@@")
	if idx < 0 || stripANSI(lines[idx+1]) != strings.Repeat(" ", 28)+"####" {
		t.Fatalf("expected centered preview, got %q", lines)
	}
	if lines := DetailLines(card, 60, PreviewState{Raw: "@@@@"}, th); indexOf(lines, "@@@@") >= 0 {
		t.Fatal("disabled preview should not render")
	}
}

func TestCloseRow(t *testing.T) {
	th := tuitheme.Default()
	row := CloseRow(20, th)
	if got := xansi.StringWidth(row); got != 20 {
		t.Fatalf("close row width = %d, want 20", got)
	}
	if !strings.HasSuffix(stripANSI(row), CloseLabel) {
		t.Fatalf("expected close label at the right edge, got %q", stripANSI(row))
	}
}
