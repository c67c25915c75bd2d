package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/apod-gallery/internal/tui/theme"
)

// Toolbar lists the keys that apply where focus currently is.
func Toolbar(inInputs, inDetail bool) string {
	if inDetail {
		return "j/k scroll | o open | y copy | esc close | ctrl+c quit"
	}
	if inInputs {
		return "type YYYY-MM-DD | tab next | enter get images | ctrl+c quit"
	}
	return "j/k move | enter open | f get images | tab dates | o browser | y copy | q quit"
}

func Footer(rangeLabel string, shown int, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("range") + " " + th.MetaValue.Render(rangeLabel),
		th.MetaValue.Render(fmt.Sprintf("%d shown", shown)),
	}
	return strings.Join(parts, " • ")
}

func Message(loading bool, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
