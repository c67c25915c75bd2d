package markup

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/glabrego/apod-gallery/internal/apod"
	"github.com/glabrego/apod-gallery/internal/gallery"
)

func sampleCards() []gallery.Card {
	return gallery.BuildCards([]apod.Entry{
		{Date: "2026-10-01", Title: "Nebula", Explanation: "Gas & dust", MediaType: "image", URL: "https://apod.nasa.gov/neb.jpg", Copyright: "A. Astronomer"},
		{Date: "2026-10-02", Title: "Launch", Explanation: "Liftoff", MediaType: "video", URL: "https://www.youtube.com/embed/abc123?rel=0"},
		{Date: "2026-10-03", Title: "Odd Video", Explanation: "Elsewhere", MediaType: "video", URL: "https://www.youtube.com/watch?v=zzz"},
		{Date: "2026-10-04", Title: "Vimeo", Explanation: "External", MediaType: "video", URL: "https://vimeo.com/42"},
	})
}

func renderPage(t *testing.T, data PageData) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("parse rendered page: %v", err)
	}
	return doc
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestRender_OneCardPerEntryInOrder(t *testing.T) {
	doc := renderPage(t, PageData{Fact: "Did you know?", Cards: sampleCards()})

	items := findAll(doc, func(n *html.Node) bool { return hasClass(n, "gallery-item") })
	if len(items) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(items))
	}
	wantDates := []string{"2026-10-01", "2026-10-02", "2026-10-03", "2026-10-04"}
	for i, item := range items {
		if !strings.Contains(textOf(item), "Date: "+wantDates[i]) {
			t.Fatalf("card %d: expected date %s in %q", i, wantDates[i], textOf(item))
		}
	}
}

func TestRender_VariantMarkup(t *testing.T) {
	doc := renderPage(t, PageData{Cards: sampleCards()})

	images := findAll(doc, func(n *html.Node) bool { return hasClass(n, "gallery-image") })
	if len(images) != 1 || attr(images[0], "src") != "https://apod.nasa.gov/neb.jpg" {
		t.Fatalf("unexpected image cards: %d", len(images))
	}

	videos := findAll(doc, func(n *html.Node) bool { return hasClass(n, "gallery-video") })
	if len(videos) != 2 {
		t.Fatalf("expected 2 video cards, got %d", len(videos))
	}
	thumbs := findAll(videos[0], func(n *html.Node) bool { return n.Data == "img" })
	if len(thumbs) != 1 || attr(thumbs[0], "src") != "https://img.youtube.com/vi/abc123/hqdefault.jpg" {
		t.Fatalf("expected thumbnail for recognised embed id")
	}
	if imgs := findAll(videos[1], func(n *html.Node) bool { return n.Data == "img" }); len(imgs) != 0 {
		t.Fatalf("expected no thumbnail for unrecognised id, got %d", len(imgs))
	}
	for _, v := range videos {
		if icons := findAll(v, func(n *html.Node) bool { return hasClass(n, "play-icon") }); len(icons) != 1 {
			t.Fatal("expected play overlay on every video card")
		}
	}

	links := findAll(doc, func(n *html.Node) bool { return hasClass(n, "gallery-link") })
	if len(links) != 1 || attr(links[0], "target") != "_blank" || attr(links[0], "href") != "https://vimeo.com/42" {
		t.Fatalf("unexpected link card markup")
	}
}

func TestRender_DetailOverlaysSkipLinkCards(t *testing.T) {
	doc := renderPage(t, PageData{Cards: sampleCards()})

	modals := findAll(doc, func(n *html.Node) bool { return hasClass(n, "modal") })
	if len(modals) != 3 {
		t.Fatalf("expected 3 overlays (image + two videos), got %d", len(modals))
	}
	if attr(modals[0], "id") != "detail-2026-10-01" {
		t.Fatalf("unexpected overlay id %q", attr(modals[0], "id"))
	}

	content := findAll(modals[0], func(n *html.Node) bool { return hasClass(n, "modal-content") })[0]
	var order []string
	for c := content.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			order = append(order, c.Data)
		}
	}
	want := []string{"a", "h2", "p", "img", "p", "p"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected detail order: %v", order)
	}

	frames := findAll(modals[1], func(n *html.Node) bool { return n.Data == "iframe" })
	if len(frames) != 1 || attr(frames[0], "src") != "https://www.youtube.com/embed/abc123?rel=0" {
		t.Fatal("expected embedded player in video overlay")
	}
}

func TestRender_FailureShowsOnlyMessage(t *testing.T) {
	doc := renderPage(t, PageData{Cards: sampleCards(), Failed: true})

	gal := findAll(doc, func(n *html.Node) bool { return attr(n, "id") == "gallery" })
	if len(gal) != 1 {
		t.Fatal("expected gallery container")
	}
	if got := strings.TrimSpace(textOf(gal[0])); got != gallery.FailureMessage {
		t.Fatalf("expected only the failure message, got %q", got)
	}
	if modals := findAll(doc, func(n *html.Node) bool { return hasClass(n, "modal") }); len(modals) != 0 {
		t.Fatalf("expected no overlays on failure, got %d", len(modals))
	}
}

func TestRender_EscapesText(t *testing.T) {
	var buf bytes.Buffer
	cards := gallery.BuildCards([]apod.Entry{{Date: "2026-10-01", Title: "<script>x</script>", MediaType: "image", URL: "https://e.com/a.jpg"}})
	if err := Render(&buf, PageData{Cards: cards}); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(buf.String(), "<script>x</script>") {
		t.Fatal("title must be escaped")
	}
}

func TestRender_LinkCardRejectsScriptURL(t *testing.T) {
	cards := gallery.BuildCards([]apod.Entry{
		{Date: "2026-10-01", Title: "Bad", MediaType: "video", URL: "javascript:alert(1)"},
		{Date: "2026-10-02", Title: "Good", MediaType: "video", URL: "https://vimeo.com/42"},
	})
	doc := renderPage(t, PageData{Cards: cards})

	links := findAll(doc, func(n *html.Node) bool { return hasClass(n, "gallery-link") })
	if len(links) != 2 {
		t.Fatalf("expected 2 link cards, got %d", len(links))
	}
	if got := attr(links[0], "href"); got != "#" {
		t.Fatalf("expected inert href for script URL, got %q", got)
	}
	if got := attr(links[1], "href"); got != "https://vimeo.com/42" {
		t.Fatalf("expected https href to pass through, got %q", got)
	}
}

func TestRender_SingleObjectAndArrayIdentical(t *testing.T) {
	const obj = `{"date":"2026-10-01","title":"A","explanation":"a","media_type":"image","url":"https://e.com/a.jpg"}`
	one, err := apod.DecodeEntries([]byte(obj))
	if err != nil {
		t.Fatalf("decode object: %v", err)
	}
	arr, err := apod.DecodeEntries([]byte("[" + obj + "]"))
	if err != nil {
		t.Fatalf("decode array: %v", err)
	}
	var a, b bytes.Buffer
	if err := Render(&a, PageData{Cards: gallery.BuildCards(one)}); err != nil {
		t.Fatal(err)
	}
	if err := Render(&b, PageData{Cards: gallery.BuildCards(arr)}); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatal("single object and one-element array rendered differently")
	}
}
