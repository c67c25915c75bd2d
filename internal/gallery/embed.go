package gallery

import (
	"net/url"
	"strings"
)

// embedHosts serve in-page players with an /embed/<id> path.
var embedHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
}

// IsEmbeddable reports whether raw points at a playable embed player.
func IsEmbeddable(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return embedHosts[strings.ToLower(u.Hostname())]
}

// EmbedID extracts the video identifier from an embed player URL such as
// https://www.youtube.com/embed/<id>?rel=0. It returns "" when no identifier
// can be found.
func EmbedID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	_, rest, ok := strings.Cut(u.Path, "embed/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return strings.TrimSpace(id)
}

// ThumbnailURL maps an embed identifier to the image host's high quality
// thumbnail.
func ThumbnailURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + url.PathEscape(id) + "/hqdefault.jpg"
}
