// Package markup renders the gallery as a standalone HTML page. Cards carry
// class names only; presentation lives in the page stylesheet.
package markup

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/glabrego/apod-gallery/internal/gallery"
)

// PageData is everything a page needs. When Failed is set the gallery holds
// only the failure message.
type PageData struct {
	Title  string
	Fact   string
	Cards  []gallery.Card
	Failed bool
}

// DetailID is the fragment identifier of a card's detail overlay.
func DetailID(card gallery.Card) string {
	return "detail-" + card.Entry.Date
}

// safeURL passes absolute http(s) URLs through and turns anything else into
// an inert fragment.
func safeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "#"
	}
	return u.String()
}

// CardNode builds the markup for one card.
func CardNode(card gallery.Card) *html.Node {
	item := element(atom.Div, "class", "gallery-item")
	appendChildren(item, textElement(atom.H2, card.Entry.Title))

	switch card.Variant {
	case gallery.VariantImage:
		link := element(atom.A, "href", "#"+DetailID(card), "class", "gallery-open")
		appendChildren(link, element(atom.Img,
			"src", safeURL(card.ContentURL()),
			"alt", card.Entry.Title,
			"class", "gallery-image"))
		appendChildren(item, link)
	case gallery.VariantVideo:
		link := element(atom.A, "href", "#"+DetailID(card), "class", "gallery-video", "data-video", safeURL(card.ContentURL()))
		if card.Thumbnail != "" {
			appendChildren(link, element(atom.Img, "src", safeURL(card.Thumbnail), "alt", "Video thumbnail"))
		}
		appendChildren(link, textElement(atom.Span, "▶", "class", "play-icon"))
		appendChildren(item, link)
	default:
		appendChildren(item, textElement(atom.A, "View Video",
			"href", safeURL(card.ContentURL()),
			"target", "_blank",
			"rel", "noopener",
			"class", "gallery-link"))
	}

	appendChildren(item,
		textElement(atom.P, card.Entry.Explanation),
		dateParagraph(card.Entry.Date, ""),
	)
	return item
}

// DetailNode builds the overlay for a card, or nil for link cards. The body
// order is title, date, content, explanation.
func DetailNode(card gallery.Card) *html.Node {
	if !card.Opens() {
		return nil
	}
	modal := element(atom.Div, "id", DetailID(card), "class", "modal")
	content := element(atom.Div, "class", "modal-content")
	appendChildren(modal,
		element(atom.A, "href", "#", "class", "modal-backdrop", "aria-label", "Close"),
		content,
	)
	appendChildren(content,
		textElement(atom.A, "×", "href", "#", "class", "modal-close", "aria-label", "Close"),
		textElement(atom.H2, card.Entry.Title),
		dateParagraph(card.Entry.Date, "modal-date"),
	)
	if card.Variant == gallery.VariantVideo {
		appendChildren(content, element(atom.Iframe,
			"src", safeURL(card.ContentURL()),
			"width", "800",
			"height", "450",
			"allow", "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture",
			"allowfullscreen", "",
			"class", "modal-frame"))
	} else {
		appendChildren(content, element(atom.Img,
			"src", safeURL(card.ContentURL()),
			"alt", card.Entry.Title,
			"class", "modal-image"))
	}
	appendChildren(content, textElement(atom.P, card.Entry.Explanation, "class", "modal-explanation"))
	if card.Entry.Copyright != "" {
		appendChildren(content, textElement(atom.P, "© "+card.Entry.Copyright, "class", "modal-credit"))
	}
	return modal
}

// GalleryNode is the display area: either every card in order, or the
// failure message alone.
func GalleryNode(cards []gallery.Card, failed bool) *html.Node {
	div := element(atom.Div, "id", "gallery", "class", "gallery")
	if failed {
		appendChildren(div, textElement(atom.P, gallery.FailureMessage, "class", "gallery-message"))
		return div
	}
	if len(cards) == 0 {
		appendChildren(div, textElement(atom.P, gallery.EmptyMessage, "class", "gallery-message"))
		return div
	}
	for _, card := range cards {
		appendChildren(div, CardNode(card))
	}
	return div
}

// Document builds the full page tree.
func Document(data PageData) *html.Node {
	title := data.Title
	if title == "" {
		title = "NASA Space Explorer"
	}

	doc := &html.Node{Type: html.DocumentNode}
	appendChildren(doc, &html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "lang", "en")
	head := element(atom.Head)
	appendChildren(head,
		element(atom.Meta, "charset", "utf-8"),
		element(atom.Meta, "name", "viewport", "content", "width=device-width, initial-scale=1"),
		textElement(atom.Title, title),
		textElement(atom.Style, stylesheet),
	)

	body := element(atom.Body)
	container := element(atom.Div, "class", "container")
	appendChildren(container, textElement(atom.H1, title))
	if data.Fact != "" {
		appendChildren(container, textElement(atom.Div, data.Fact, "class", "fact"))
	}
	appendChildren(container, GalleryNode(data.Cards, data.Failed))
	appendChildren(body, container)

	if !data.Failed {
		for _, card := range data.Cards {
			if detail := DetailNode(card); detail != nil {
				appendChildren(body, detail)
			}
		}
	}
	appendChildren(body, textElement(atom.Script, escapeScript))
	appendChildren(root, head, body)
	appendChildren(doc, root)
	return doc
}

// Render writes the page.
func Render(w io.Writer, data PageData) error {
	if err := html.Render(w, Document(data)); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func dateParagraph(date, class string) *html.Node {
	var p *html.Node
	if class != "" {
		p = element(atom.P, "class", class)
	} else {
		p = element(atom.P)
	}
	appendChildren(p, textElement(atom.Strong, "Date:"), textNode(" "+date))
	return p
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textElement(a atom.Atom, text string, attrs ...string) *html.Node {
	n := element(a, attrs...)
	appendChildren(n, textNode(text))
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendChildren(parent *html.Node, children ...*html.Node) {
	for _, child := range children {
		parent.AppendChild(child)
	}
}
