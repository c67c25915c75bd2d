package view

import (
	"regexp"
	"strings"
	"testing"

	tuitheme "github.com/glabrego/apod-gallery/internal/tui/theme"
)

var ansiStrip = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiStrip.ReplaceAllString(s, "")
}

func TestToolbar(t *testing.T) {
	if got := Toolbar(false, false); !strings.Contains(got, "enter open") {
		t.Fatalf("unexpected gallery toolbar: %q", got)
	}
	if got := Toolbar(true, false); !strings.Contains(got, "YYYY-MM-DD") {
		t.Fatalf("unexpected input toolbar: %q", got)
	}
	if got := Toolbar(true, true); !strings.Contains(got, "esc close") {
		t.Fatalf("detail toolbar should win over inputs: %q", got)
	}
}

func TestFooter(t *testing.T) {
	th := tuitheme.Default()
	got := stripANSI(Footer("2024-01-01..2024-01-09", 9, th))
	for _, want := range []string{"range 2024-01-01..2024-01-09", "9 shown"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in footer, got %q", want, got)
		}
	}
}

func TestMessage(t *testing.T) {
	th := tuitheme.Default()
	if got := stripANSI(Message(false, false, "", "", th)); !strings.Contains(got, "state: idle | Ready") {
		t.Fatalf("unexpected idle message: %q", got)
	}
	if got := stripANSI(Message(true, false, "", "", th)); !strings.Contains(got, "state: loading") {
		t.Fatalf("unexpected loading message: %q", got)
	}
	if got := stripANSI(Message(false, true, "", "boom", th)); !strings.Contains(got, "state: warning | boom") {
		t.Fatalf("unexpected warning message: %q", got)
	}
	if got := stripANSI(Message(false, true, "Copied URL", "boom", th)); !strings.Contains(got, "Copied URL") {
		t.Fatalf("status should take precedence: %q", got)
	}
}
