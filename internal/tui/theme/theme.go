package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/apod-gallery/internal/gallery"
)

// Theme names every style the gallery uses. Renderers ask for a style by
// role and never build one inline.
type Theme struct {
	Title     lipgloss.Style
	Fact      lipgloss.Style
	Label     lipgloss.Style
	Input     lipgloss.Style
	InputOn   lipgloss.Style
	Button    lipgloss.Style
	ButtonOn  lipgloss.Style
	InputErr  lipgloss.Style
	Separator lipgloss.Style

	CardMarker  lipgloss.Style
	CardTitle   lipgloss.Style
	CardDate    lipgloss.Style
	Explanation lipgloss.Style
	MediaImage  lipgloss.Style
	MediaVideo  lipgloss.Style
	MediaLink   lipgloss.Style
	PlayIcon    lipgloss.Style
	ActiveLine  lipgloss.Style

	Message lipgloss.Style
	Failure lipgloss.Style
	Loading lipgloss.Style

	Backdrop   lipgloss.Style
	ModalBox   lipgloss.Style
	ModalClose lipgloss.Style
	ModalTitle lipgloss.Style
	ModalDate  lipgloss.Style
	ModalHint  lipgloss.Style
	Credit     lipgloss.Style

	MetaLabel lipgloss.Style
	MetaValue lipgloss.Style
	StateIdle lipgloss.Style
	StateWarn lipgloss.Style
	StateLoad lipgloss.Style
}

func Default() Theme {
	cpRosewater := lipgloss.Color("#f5e0dc")
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpBlue := lipgloss.Color("#89b4fa")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface2 := lipgloss.Color("#585b70")

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Fact:      lipgloss.NewStyle().Bold(true).Foreground(cpBlue),
		Label:     lipgloss.NewStyle().Foreground(cpOverlay1),
		Input:     lipgloss.NewStyle().Foreground(cpSubtext1),
		InputOn:   lipgloss.NewStyle().Foreground(cpText).Background(cpSurface0),
		Button:    lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		ButtonOn:  lipgloss.NewStyle().Bold(true).Foreground(cpSurface0).Background(cpLavender).Padding(0, 1),
		InputErr:  lipgloss.NewStyle().Foreground(cpRed),
		Separator: lipgloss.NewStyle().Foreground(cpSurface2),

		CardMarker:  lipgloss.NewStyle().Foreground(cpMauve),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(cpText),
		CardDate:    lipgloss.NewStyle().Foreground(cpOverlay1),
		Explanation: lipgloss.NewStyle().Foreground(cpSubtext0),
		MediaImage:  lipgloss.NewStyle().Foreground(cpTeal),
		MediaVideo:  lipgloss.NewStyle().Foreground(cpPeach),
		MediaLink:   lipgloss.NewStyle().Foreground(cpBlue).Underline(true),
		PlayIcon:    lipgloss.NewStyle().Bold(true).Foreground(cpRosewater),
		ActiveLine:  lipgloss.NewStyle().Background(cpSurface0),

		Message: lipgloss.NewStyle().Foreground(cpSubtext1),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		Loading: lipgloss.NewStyle().Italic(true).Foreground(cpPeach),

		Backdrop: lipgloss.NewStyle().Faint(true).Foreground(cpSurface2),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpLavender).
			Padding(0, 1),
		ModalClose: lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(cpLavender),
		ModalDate:  lipgloss.NewStyle().Foreground(cpOverlay1),
		ModalHint:  lipgloss.NewStyle().Faint(true).Italic(true).Foreground(cpSubtext0),
		Credit:     lipgloss.NewStyle().Italic(true).Foreground(cpOverlay1),

		MetaLabel: lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue: lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle: lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn: lipgloss.NewStyle().Foreground(cpRed),
		StateLoad: lipgloss.NewStyle().Foreground(cpYellow),
	}
}

// Media returns the style for a card's media line.
func (t Theme) Media(v gallery.Variant) lipgloss.Style {
	switch v {
	case gallery.VariantImage:
		return t.MediaImage
	case gallery.VariantVideo:
		return t.MediaVideo
	default:
		return t.MediaLink
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}

func (t Theme) InputStyle(focused bool) lipgloss.Style {
	if focused {
		return t.InputOn
	}
	return t.Input
}

func (t Theme) ButtonStyle(focused bool) lipgloss.Style {
	if focused {
		return t.ButtonOn
	}
	return t.Button
}
