package extractor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-mp3/internal/progress"
)

func strPtr(s string) *string {
	return &s
}

func TestMetadataFromInfo(t *testing.T) {
	tests := []struct {
		name     string
		info     *ytdlp.ExtractedInfo
		expected string
		err      error
	}{
		{
			name:     "complete",
			info:     &ytdlp.ExtractedInfo{ID: "dQw4w9WgXcQ", Title: strPtr("Never Gonna Give You Up")},
			expected: "Never Gonna Give You Up",
		},
		{
			name: "nil info",
			info: nil,
			err:  ErrNoInfo,
		},
		{
			name: "missing id",
			info: &ytdlp.ExtractedInfo{Title: strPtr("Song")},
			err:  ErrMissingID,
		},
		{
			name: "missing title",
			info: &ytdlp.ExtractedInfo{ID: "abc"},
			err:  ErrMissingTitle,
		},
		{
			name: "blank title",
			info: &ytdlp.ExtractedInfo{ID: "abc", Title: strPtr("   ")},
			err:  ErrMissingTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := metadataFromInfo(tt.info)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta.Title != tt.expected {
				t.Errorf("Title = %q, expected %q", meta.Title, tt.expected)
			}
			if meta.ID != tt.info.ID {
				t.Errorf("ID = %q, expected %q", meta.ID, tt.info.ID)
			}
		})
	}
}

func TestToUpdate(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 10, 0, time.UTC)
	y := NewYTDLP(nil)
	y.now = func() time.Time { return now }

	tests := []struct {
		name     string
		update   ytdlp.ProgressUpdate
		ok       bool
		expected progress.Update
	}{
		{
			name: "downloading with speed",
			update: ytdlp.ProgressUpdate{
				Status:          "downloading",
				DownloadedBytes: 2000,
				TotalBytes:      8000,
				Started:         now.Add(-2 * time.Second),
			},
			ok:       true,
			expected: progress.Update{Downloaded: 2000, Total: 8000, Speed: 1000},
		},
		{
			name: "unknown total without start",
			update: ytdlp.ProgressUpdate{
				Status:          "downloading",
				DownloadedBytes: 500,
			},
			ok:       true,
			expected: progress.Update{Downloaded: 500},
		},
		{
			name: "finished fills the bar",
			update: ytdlp.ProgressUpdate{
				Status:          "finished",
				DownloadedBytes: 7000,
				TotalBytes:      8000,
			},
			ok:       true,
			expected: progress.Update{Downloaded: 8000, Total: 8000},
		},
		{
			name:   "post processing is ignored",
			update: ytdlp.ProgressUpdate{Status: "post_processing"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := y.toUpdate(tt.update)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("toUpdate() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestOutputTemplate(t *testing.T) {
	got := OutputTemplate(filepath.Join("music", ".temp"))
	expected := filepath.Join("music", ".temp", "%(id)s.%(ext)s")
	if got != expected {
		t.Errorf("OutputTemplate() = %s, expected %s", got, expected)
	}
}

func TestFetch_RequiresStagingDir(t *testing.T) {
	y := NewYTDLP(nil)
	err := y.Fetch(context.Background(), "https://www.youtube.com/watch?v=abc", FetchOptions{}, nil)
	if err == nil {
		t.Error("Expected error without staging directory")
	}
}

func TestYTDLP_ImplementsExtractor(t *testing.T) {
	var _ Extractor = NewYTDLP(nil)
}
