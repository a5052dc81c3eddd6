package platform

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewPlaylistExpander(t *testing.T) {
	p := NewPlaylistExpander(nil)
	if p.timeout != DefaultPlaylistTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultPlaylistTimeout, p.timeout)
	}

	p.SetTimeout(5 * time.Second)
	if p.timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", p.timeout)
	}
}

func TestExpand(t *testing.T) {
	p := NewPlaylistExpander(nil)
	p.list = func(ctx context.Context, playlistID string) ([]PlaylistEntry, error) {
		switch playlistID {
		case "PL1":
			return []PlaylistEntry{
				{VideoID: "v1", Title: "One"},
				{VideoID: ""},
				{VideoID: "v2", Title: "Two"},
			}, nil
		default:
			return nil, errors.New("private playlist")
		}
	}

	input := []string{
		"https://youtu.be/solo",
		"https://www.youtube.com/playlist?list=PL1",
		"https://www.youtube.com/watch?v=v1",
		"https://www.youtube.com/playlist?list=BROKEN",
	}

	got, err := p.Expand(context.Background(), input)
	if err == nil {
		t.Error("Expected joined error for the broken playlist")
	}

	expected := []string{
		"https://youtu.be/solo",
		"https://www.youtube.com/watch?v=v1",
		"https://www.youtube.com/watch?v=v2",
		"https://www.youtube.com/playlist?list=BROKEN",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expand() = %v, expected %v", got, expected)
	}
}

func TestExpand_NoPlaylists(t *testing.T) {
	p := NewPlaylistExpander(nil)
	p.list = func(context.Context, string) ([]PlaylistEntry, error) {
		t.Fatal("lister must not be called without playlist URLs")
		return nil, nil
	}

	input := []string{"https://youtu.be/a", "https://youtu.be/b"}
	got, err := p.Expand(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, input) {
		t.Errorf("Expand() = %v, expected %v", got, input)
	}
}

func TestExpand_Cancelled(t *testing.T) {
	p := NewPlaylistExpander(nil)
	p.list = func(ctx context.Context, _ string) ([]PlaylistEntry, error) {
		return nil, ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Expand(ctx, []string{"https://www.youtube.com/playlist?list=PL1"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestPlaylistEntry_URL(t *testing.T) {
	e := PlaylistEntry{VideoID: "abc"}
	if e.URL() != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("URL() = %s", e.URL())
	}
}
