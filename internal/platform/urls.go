package platform

import (
	"strings"
)

// URL parameters and separators
const (
	HTTPPrefix     = "http"
	PlaylistParam  = "list="
	ParamSeparator = "&"
	DropBraces     = "{}"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// ParseURLs splits newline separated input into URLs. Braces added by
// drag-and-drop are removed, lines that do not start with http are dropped
// and repeats keep their first position.
func ParseURLs(text string) []string {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	seen := make(map[string]bool, len(lines))
	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.Map(func(r rune) rune {
			if strings.ContainsRune(DropBraces, r) {
				return -1
			}
			return r
		}, line))

		if !strings.HasPrefix(line, HTTPPrefix) || seen[line] {
			continue
		}
		seen[line] = true
		urls = append(urls, line)
	}
	return urls
}

// IsPlaylistURL reports whether url carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return ExtractPlaylistID(url) != ""
}

// ExtractPlaylistID returns the value of the first list= parameter, or ""
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(url string) string {
	_, after, found := strings.Cut(url, PlaylistParam)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(after, ParamSeparator)
	return strings.TrimSpace(id)
}
