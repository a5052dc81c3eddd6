package platform

import (
	"reflect"
	"testing"
)

func TestParseURLs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "one per line",
			input:    "https://youtu.be/a\nhttps://youtu.be/b\n",
			expected: []string{"https://youtu.be/a", "https://youtu.be/b"},
		},
		{
			name:     "blank and non-http lines dropped",
			input:    "\n  \nnot a url\nftp://x\nhttps://youtu.be/a\n",
			expected: []string{"https://youtu.be/a"},
		},
		{
			name:     "drag and drop braces stripped",
			input:    "{https://www.youtube.com/watch?v=abc}\n",
			expected: []string{"https://www.youtube.com/watch?v=abc"},
		},
		{
			name:     "windows line endings and padding",
			input:    "  https://youtu.be/a  \r\nhttps://youtu.be/b\r\n",
			expected: []string{"https://youtu.be/a", "https://youtu.be/b"},
		},
		{
			name:     "duplicates keep first position",
			input:    "https://youtu.be/a\nhttps://youtu.be/b\nhttps://youtu.be/a",
			expected: []string{"https://youtu.be/a", "https://youtu.be/b"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseURLs(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseURLs(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "extract playlist ID from watch URL",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "extract playlist ID from playlist URL",
			url:      "https://www.youtube.com/playlist?list=PLAYLIST_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "extract playlist ID with additional parameters",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1&t=30",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "extract playlist ID with multiple list parameters",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&list=OTHER_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "URL without playlist parameter",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID",
			expected: "",
		},
		{
			name:     "URL with empty playlist parameter",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=",
			expected: "",
		},
		{
			name:     "empty URL",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractPlaylistID(tt.url)
			if result != tt.expected {
				t.Errorf("expected %q, got %q for URL: %s", tt.expected, result, tt.url)
			}
			if IsPlaylistURL(tt.url) != (tt.expected != "") {
				t.Errorf("IsPlaylistURL(%s) disagrees with ExtractPlaylistID", tt.url)
			}
		})
	}
}
