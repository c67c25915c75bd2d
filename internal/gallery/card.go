// Package gallery turns archive entries into presentation cards.
package gallery

import (
	"strings"

	"github.com/glabrego/apod-gallery/internal/apod"
)

const (
	LoadingMessage = "Loading space images..."
	FailureMessage = "Sorry, something went wrong. Please try again."
	EmptyMessage   = "No space images for this range."
)

// Variant selects how a card is presented.
type Variant int

const (
	VariantImage Variant = iota
	VariantVideo
	VariantLink
)

func (v Variant) String() string {
	switch v {
	case VariantImage:
		return "image"
	case VariantVideo:
		return "video"
	default:
		return "link"
	}
}

// Card is the rendered summary of one entry.
type Card struct {
	Entry   apod.Entry
	Variant Variant
	// Thumbnail is set for video cards whose embed identifier was found.
	Thumbnail string
}

// Opens reports whether selecting the card opens the detail viewer. Link
// cards navigate away instead.
func (c Card) Opens() bool {
	return c.Variant == VariantImage || c.Variant == VariantVideo
}

// ContentURL is the URL shown or played for the card's main content.
func (c Card) ContentURL() string {
	return strings.TrimSpace(c.Entry.URL)
}

// BrowserURL is what opening the card outside the terminal should load. Images
// prefer the HD rendition.
func (c Card) BrowserURL() string {
	if c.Variant == VariantImage {
		if hd := strings.TrimSpace(c.Entry.HDURL); hd != "" {
			return hd
		}
	}
	return c.ContentURL()
}

// Classify picks exactly one variant for the entry.
func Classify(entry apod.Entry) Variant {
	switch strings.ToLower(strings.TrimSpace(entry.MediaType)) {
	case apod.MediaImage:
		return VariantImage
	case apod.MediaVideo:
		if IsEmbeddable(entry.URL) {
			return VariantVideo
		}
	}
	return VariantLink
}

func NewCard(entry apod.Entry) Card {
	card := Card{Entry: entry, Variant: Classify(entry)}
	if card.Variant == VariantVideo {
		card.Thumbnail = ThumbnailURL(EmbedID(entry.URL))
	}
	return card
}

// BuildCards keeps the order of entries; callers pass them already sorted.
func BuildCards(entries []apod.Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, NewCard(entry))
	}
	return cards
}
